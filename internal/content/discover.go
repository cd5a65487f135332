// Package content discovers Markdown pages under a content root and
// validates their frontmatter against per-collection schemas.
//
// The content root mirrors the site's sections: one directory per collection
// (docs/, blog/, talks/, papers/). Pages map to clean URLs: docs/tour.md
// becomes /docs/tour/, docs/index.md becomes /docs/.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for content discovery.
var (
	ErrContentRootNotFound = errors.New("content directory not found")
	ErrInvalidExtension    = errors.New("file must have .md or .markdown extension")
)

// Page is one discovered source file, located but not yet read.
type Page struct {
	Collection Collection
	SourcePath string // absolute or root-relative path to the .md file
	Route      string // root-relative URL path, always "/..." with trailing slash
	OutputPath string // path under the output dir, e.g. docs/tour/index.html
}

// Discover walks the content root and returns every Markdown page, sorted by
// route for deterministic builds. Directories that don't match a known
// collection are ignored: the root may hold editorial files (README, assets)
// that aren't pages.
func Discover(contentDir string) ([]Page, error) {
	info, err := os.Stat(contentDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrContentRootNotFound, contentDir)
	}

	var pages []Page
	for _, c := range Collections {
		dir := filepath.Join(contentDir, string(c))
		collected, err := discoverCollection(dir, c)
		if err != nil {
			return nil, err
		}
		pages = append(pages, collected...)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Route < pages[j].Route })
	return pages, nil
}

func discoverCollection(dir string, c Collection) ([]Page, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil // collection directory is optional
	}

	var pages []Page
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(p)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		route, outPath := routeFor(c, rel, ext)
		pages = append(pages, Page{
			Collection: c,
			SourcePath: p,
			Route:      route,
			OutputPath: outPath,
		})
		return nil
	})
	return pages, err
}

// routeFor maps a collection-relative source path to its clean URL and output
// file. index files collapse onto their directory.
func routeFor(c Collection, rel, ext string) (route, outPath string) {
	slug := filepath.ToSlash(strings.TrimSuffix(rel, ext))

	if path.Base(slug) == "index" {
		slug = path.Dir(slug)
		if slug == "." {
			slug = ""
		}
	}

	route = "/" + string(c) + "/"
	if slug != "" {
		route += slug + "/"
	}

	outPath = filepath.Join(string(c), filepath.FromSlash(slug), "index.html")
	return route, outPath
}
