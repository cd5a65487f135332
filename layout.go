package sitegen

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/solis-lang/sitegen/internal/assets"
	"github.com/solis-lang/sitegen/internal/sidebar"
	"github.com/solis-lang/sitegen/internal/urlutil"
)

// layouts holds the parsed templates for one Service. Parsed once at
// construction; html/template is safe for concurrent Execute.
type layouts struct {
	layout  *template.Template
	listing *template.Template
}

// layoutData is the data contract of the layout template. Content is marked
// template.HTML because it is produced by our own Markdown renderer, not by
// user input at request time.
type layoutData struct {
	SiteName    string
	Tagline     string
	Title       string
	Description string
	ShowTitle   bool
	AssetPath   string
	Content     template.HTML
	Sidebar     []sidebar.Group
}

// listingEntry is one row of a synthesized collection index.
type listingEntry struct {
	Route       string
	Title       string
	Date        string
	Description string
}

func parseLayouts(loader assets.Loader) (*layouts, error) {
	layoutSrc, err := loader.LoadTemplate("layout")
	if err != nil {
		return nil, err
	}
	layout, err := template.New("layout").Parse(layoutSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutParse, err)
	}

	listingSrc, err := loader.LoadTemplate("listing")
	if err != nil {
		return nil, err
	}
	listing, err := template.New("listing").Parse(listingSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingParse, err)
	}

	return &layouts{layout: layout, listing: listing}, nil
}

// renderLayout wraps a rendered HTML fragment in the site layout.
func (s *Service) renderLayout(data layoutData) (string, error) {
	var buf strings.Builder
	if err := s.layouts.layout.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLayoutExecute, err)
	}
	return buf.String(), nil
}

// renderListingFragment renders the entry list for a synthesized index page.
func (s *Service) renderListingFragment(entries []listingEntry) (string, error) {
	var buf strings.Builder
	data := struct{ Entries []listingEntry }{Entries: entries}
	if err := s.layouts.listing.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrListingExecute, err)
	}
	return buf.String(), nil
}

// assetPath returns the URL prefix stylesheets are served under, including
// the base path when one is configured. The rebaser only rewrites anchors,
// so <link> hrefs carry the base path from the template instead.
func (s *Service) assetPath() string {
	return urlutil.Join(s.rebaser.BasePath(), "/assets")
}
