package sitegen

import (
	"time"

	"github.com/solis-lang/sitegen/internal/assets"
	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/pipeline"
)

// defaultWorkers bounds page rendering concurrency when no explicit worker
// count is set. Page rendering is CPU-bound, so runtime.NumCPU is applied at
// build time when this is 0.
const defaultWorkers = 0

// Option configures a Service.
type Option func(*Service)

// WithAssetLoader overrides the asset loader (e.g. a FilesystemLoader for a
// site with custom templates). Defaults to the embedded assets.
func WithAssetLoader(loader assets.Loader) Option {
	return func(s *Service) {
		s.loader = loader
	}
}

// WithConverter overrides the Markdown converter. Used by tests to inject
// failing or canned converters.
func WithConverter(c pipeline.HTMLConverter) Option {
	return func(s *Service) {
		s.converter = c
	}
}

// WithWorkers sets the page rendering concurrency. Panics if n < 0
// (programmer error, similar to time.NewTicker).
func WithWorkers(n int) Option {
	if n < 0 {
		panic("sitegen: WithWorkers count must not be negative")
	}
	return func(s *Service) {
		s.workers = n
	}
}

// PageResult holds the outcome of rendering a single page.
type PageResult struct {
	Route      string
	SourcePath string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// BuildResult aggregates the outcome of one build.
type BuildResult struct {
	Pages       []PageResult
	StaticFiles int
	Duration    time.Duration
}

// Failed returns the results of pages that failed to render.
func (r *BuildResult) Failed() []PageResult {
	var failed []PageResult
	for _, p := range r.Pages {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}
	return failed
}

// page pairs a discovered source with its validated metadata.
type page struct {
	content.Page
	meta *content.Meta
	body []byte
}
