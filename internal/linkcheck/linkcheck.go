// Package linkcheck verifies that internal links in Markdown sources resolve
// to pages or static files the build produces. It runs over sources, not
// rendered HTML, so reports point at the file an author has to fix.
package linkcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/solis-lang/sitegen/internal/content"
)

// LinkKind classifies a link-like construct in a Markdown source.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is one extracted destination.
type Link struct {
	Kind        LinkKind
	Destination string
}

// Broken describes one unresolvable internal link.
type Broken struct {
	SourcePath  string
	Destination string
	Reason      string
}

func (b Broken) String() string {
	return fmt.Sprintf("%s: %s (%s)", b.SourcePath, b.Destination, b.Reason)
}

// ExtractLinks parses a Markdown body (frontmatter already removed) and
// extracts link-like constructs. Goldmark resolves reference-style links to
// Link nodes with a Destination; reference definitions live in the parse
// context, not the AST.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}

	return links
}

// Check reads every page source, extracts its links, and reports internal
// destinations that match neither a discovered route nor a file under
// staticDir. External URLs, fragments, and mailto links are skipped.
func Check(pages []content.Page, staticDir string) ([]Broken, error) {
	routes := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		routes[p.Route] = struct{}{}
	}

	var broken []Broken
	for _, p := range pages {
		src, err := os.ReadFile(p.SourcePath) // #nosec G304 -- paths come from content discovery
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.SourcePath, err)
		}

		_, body, _, err := content.SplitFrontmatter(src)
		if err != nil {
			// Schema validation reports this properly during builds; here it
			// just means we can't analyze the file.
			broken = append(broken, Broken{
				SourcePath:  p.SourcePath,
				Destination: "",
				Reason:      err.Error(),
			})
			continue
		}

		for _, link := range ExtractLinks(body) {
			if !isInternal(link.Destination) {
				continue
			}
			if !resolves(link.Destination, routes, staticDir) {
				broken = append(broken, Broken{
					SourcePath:  p.SourcePath,
					Destination: link.Destination,
					Reason:      "no page or static file at this path",
				})
			}
		}
	}
	return broken, nil
}

// isInternal reports whether a destination is a root-relative site path.
func isInternal(dest string) bool {
	if dest == "" {
		return false
	}
	if strings.HasPrefix(dest, "#") ||
		strings.HasPrefix(dest, "//") ||
		strings.Contains(dest, "://") ||
		strings.HasPrefix(dest, "mailto:") {
		return false
	}
	return strings.HasPrefix(dest, "/")
}

// resolves checks a destination against known routes and static files.
func resolves(dest string, routes map[string]struct{}, staticDir string) bool {
	// Strip fragment and query before matching
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	if dest == "/" {
		return true
	}

	withSlash := dest
	if !strings.HasSuffix(withSlash, "/") {
		withSlash += "/"
	}
	if _, ok := routes[withSlash]; ok {
		return true
	}

	if staticDir == "" {
		return false
	}
	rel := filepath.FromSlash(strings.TrimPrefix(dest, "/"))
	info, err := os.Stat(filepath.Join(staticDir, rel))
	return err == nil && !info.IsDir()
}
