package sitegen

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/solis-lang/sitegen/internal/assets"
	"github.com/solis-lang/sitegen/internal/config"
	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/fileutil"
	"github.com/solis-lang/sitegen/internal/highlight"
	"github.com/solis-lang/sitegen/internal/pipeline"
	"github.com/solis-lang/sitegen/internal/sidebar"
)

// Service orchestrates the site build pipeline.
type Service struct {
	cfg       *config.Config
	converter pipeline.HTMLConverter
	rebaser   *pipeline.LinkRebaser
	minifier  *pipeline.Minifier
	loader    assets.Loader
	layouts   *layouts
	workers   int
}

// New creates a Service for the given site configuration.
// Use options to customize behavior (e.g., WithWorkers).
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	s := &Service{
		cfg:       cfg,
		converter: pipeline.NewGoldmarkConverter(),
		rebaser:   pipeline.NewLinkRebaser(cfg.Site.BasePath),
		workers:   defaultWorkers,
	}
	if cfg.Build.Minify {
		s.minifier = pipeline.NewMinifier()
	}

	for _, opt := range opts {
		opt(s)
	}

	// Resolve the asset loader if not injected (e.g., by tests)
	if s.loader == nil {
		if cfg.Paths.Assets != "" {
			loader, err := assets.NewFilesystemLoader(cfg.Paths.Assets)
			if err != nil {
				return nil, err
			}
			s.loader = loader
		} else {
			s.loader = assets.NewEmbeddedLoader()
		}
	}

	layouts, err := parseLayouts(s.loader)
	if err != nil {
		return nil, err
	}
	s.layouts = layouts

	return s, nil
}

// Rebaser exposes the configured link rebaser; the preview server mounts the
// site under the same normalized base path the build used.
func (s *Service) Rebaser() *pipeline.LinkRebaser {
	return s.rebaser
}

// Build renders the whole site into the configured output directory.
// Page-level failures are recorded in the result, not returned as an error;
// an error means the build could not run at all (bad content root, broken
// sidebar, unloadable assets).
func (s *Service) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	discovered, err := content.Discover(s.cfg.Paths.Content)
	if err != nil {
		return nil, err
	}

	pages, metaFailures := s.loadPages(discovered)

	groups, err := s.buildSidebar(pages)
	if err != nil {
		return nil, err
	}

	results := s.renderAll(ctx, pages, groups)
	results = append(results, metaFailures...)

	listingResults, err := s.renderListings(ctx, pages, groups)
	if err != nil {
		return nil, err
	}
	results = append(results, listingResults...)

	if err := s.emitStylesheets(); err != nil {
		return nil, err
	}

	copied, err := fileutil.CopyDir(s.cfg.Paths.Static, s.cfg.Paths.Output)
	if err != nil {
		return nil, fmt.Errorf("copying static files: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Route < results[j].Route })
	return &BuildResult{
		Pages:       results,
		StaticFiles: copied,
		Duration:    time.Since(start),
	}, nil
}

// loadPages reads sources and validates frontmatter. Pages that fail are
// returned separately as failed results; drafts are dropped unless the build
// includes them.
func (s *Service) loadPages(discovered []content.Page) ([]page, []PageResult) {
	var pages []page
	var failures []PageResult

	for _, d := range discovered {
		src, err := os.ReadFile(d.SourcePath) // #nosec G304 -- paths come from content discovery
		if err != nil {
			failures = append(failures, PageResult{
				Route:      d.Route,
				SourcePath: d.SourcePath,
				Err:        fmt.Errorf("%w: %v", ErrPageRead, err),
			})
			continue
		}

		normalized := []byte(pipeline.NormalizeLineEndings(string(src)))
		raw, body, had, err := content.SplitFrontmatter(normalized)
		if err == nil && !had {
			err = content.ErrMissingFrontmatter
		}

		var meta *content.Meta
		if err == nil {
			meta, err = content.ParseMeta(raw, d.Collection)
		}
		if err != nil {
			failures = append(failures, PageResult{
				Route:      d.Route,
				SourcePath: d.SourcePath,
				Err:        fmt.Errorf("%s: %w", d.SourcePath, err),
			})
			continue
		}

		if meta.Draft && !s.cfg.Build.IncludeDrafts {
			continue
		}

		pages = append(pages, page{Page: d, meta: meta, body: body})
	}

	return pages, failures
}

// buildSidebar loads and resolves the navigation tree. A missing sidebar
// file means the site has no sidebar; that's valid.
func (s *Service) buildSidebar(pages []page) ([]sidebar.Group, error) {
	if !fileutil.FileExists(s.cfg.Paths.Sidebar) {
		return nil, nil
	}

	f, err := sidebar.Load(s.cfg.Paths.Sidebar)
	if err != nil {
		return nil, err
	}

	plain := make([]content.Page, len(pages))
	titles := make(map[string]string, len(pages))
	for i, p := range pages {
		plain[i] = p.Page
		titles[p.Route] = p.meta.Title
	}

	groups, err := f.Resolve(plain)
	if err != nil {
		return nil, err
	}

	// Autogenerated items carry labels derived from routes; page titles are
	// better.
	for gi := range groups {
		for ii, item := range groups[gi].Items {
			if title, ok := titles[item.Link]; ok && title != "" {
				groups[gi].Items[ii].Label = title
			}
		}
	}

	return groups, nil
}

// renderAll renders pages concurrently through a bounded worker pool.
func (s *Service) renderAll(ctx context.Context, pages []page, groups []sidebar.Group) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	workers := s.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	results := make([]PageResult, len(pages))
	jobs := make(chan int, len(pages))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = s.renderPage(ctx, pages[idx], groups)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// renderPage runs one page through the full pipeline and writes the result.
func (s *Service) renderPage(ctx context.Context, p page, groups []sidebar.Group) PageResult {
	start := time.Now()
	result := PageResult{
		Route:      p.Route,
		SourcePath: p.SourcePath,
		OutputPath: filepath.Join(s.cfg.Paths.Output, p.OutputPath),
	}

	fail := func(err error) PageResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	md := pipeline.Preprocess(string(p.body))
	fragment, err := s.converter.ToHTML(ctx, md)
	if err != nil {
		return fail(fmt.Errorf("converting %s: %w", p.SourcePath, err))
	}

	// Docs pages get the sidebar; other collections are flat sections.
	var pageGroups []sidebar.Group
	if p.Collection == content.CollectionDocs {
		pageGroups = groups
	}

	full, err := s.renderLayout(layoutData{
		SiteName:    s.cfg.Site.Name,
		Tagline:     s.cfg.Site.Tagline,
		Title:       p.meta.Title,
		Description: p.meta.Description,
		ShowTitle:   !startsWithHeading(md),
		AssetPath:   s.assetPath(),
		Content:     template.HTML(fragment), // #nosec G203 -- produced by our own renderer
		Sidebar:     pageGroups,
	})
	if err != nil {
		return fail(err)
	}

	out, err := s.finalize(full)
	if err != nil {
		return fail(err)
	}

	if err := fileutil.WriteFile(result.OutputPath, []byte(out)); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrPageWrite, err))
	}

	result.Duration = time.Since(start)
	return result
}

// finalize applies the post-layout stages shared by pages and listings:
// link rebasing, then optional minification.
func (s *Service) finalize(full string) (string, error) {
	out, err := s.rebaser.RebaseHTML(full)
	if err != nil {
		return "", fmt.Errorf("rebasing links: %w", err)
	}
	if s.minifier != nil {
		out, err = s.minifier.MinifyHTML(out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// emitStylesheets writes the site stylesheet and the generated highlight
// stylesheet into the output assets directory.
func (s *Service) emitStylesheets() error {
	siteCSS, err := s.loader.LoadStyle("site")
	if err != nil {
		return err
	}
	highlightCSS, err := highlight.Stylesheet(s.cfg.Highlight)
	if err != nil {
		return err
	}

	if s.minifier != nil {
		if siteCSS, err = s.minifier.MinifyCSS(siteCSS); err != nil {
			return err
		}
		if highlightCSS, err = s.minifier.MinifyCSS(highlightCSS); err != nil {
			return err
		}
	}

	assetsDir := filepath.Join(s.cfg.Paths.Output, "assets")
	if err := fileutil.WriteFile(filepath.Join(assetsDir, "site.css"), []byte(siteCSS)); err != nil {
		return err
	}
	return fileutil.WriteFile(filepath.Join(assetsDir, "highlight.css"), []byte(highlightCSS))
}

// startsWithHeading reports whether the Markdown body opens with an ATX
// heading, in which case the layout suppresses its own <h1>.
func startsWithHeading(md string) bool {
	trimmed := strings.TrimLeft(md, "\n")
	return strings.HasPrefix(trimmed, "# ")
}
