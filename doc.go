// Package sitegen builds the static documentation website for the Solis
// language project: Markdown content collections (docs, blog, talks, papers)
// rendered to a navigable HTML tree.
//
// # Quick Start
//
// Load a site config, create a service, and build:
//
//	cfg, err := config.Load("site.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc, err := sitegen.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := svc.Build(ctx)
//
// The result reports every rendered page and any per-page failures; a build
// with failed pages still writes the pages that succeeded.
//
// # Build Pipeline
//
// Each page goes through these stages:
//
//  1. Frontmatter split and schema validation (per collection)
//  2. Markdown preprocessing (line normalization)
//  3. Markdown to HTML via Goldmark (GFM, syntax highlighting)
//  4. Layout templating (embedded templates, overridable from disk)
//  5. Base-path link rebasing for subpath deployments
//  6. Optional minification
//
// Collection index pages that have no index.md are synthesized as listings
// (blog posts by date, papers by year).
//
// # Base Paths
//
// Sites deployed under a subpath (e.g. https://example.org/solis/) set
// site.basePath in the config. Root-relative anchor hrefs in rendered pages
// are then rebased so they resolve under the subpath; absolute URLs,
// relative links, and fragments are never touched. With no base path
// configured the rebasing stage is a no-op.
//
// # Custom Templates
//
// Override the embedded layout or stylesheet by pointing paths.assets at a
// directory:
//
//	assets/
//	├── styles/
//	│   └── site.css
//	└── templates/
//	    └── layout.html
package sitegen
