// Package sidebar loads and validates the site navigation tree.
//
// The sidebar is declarative data: an ordered list of labeled groups, each
// holding explicit links or an autogenerate directive that pulls in every
// page under a route prefix. Rendering happens in the layout templates; base
// path rebasing happens after layout like for any other anchor.
package sidebar

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/yamlutil"
)

// Sentinel errors for sidebar configuration.
var (
	ErrSidebarNotFound   = errors.New("sidebar file not found")
	ErrSidebarParse      = errors.New("failed to parse sidebar")
	ErrEmptyLabel        = errors.New("sidebar entry missing label")
	ErrEmptyLink         = errors.New("sidebar item missing link")
	ErrConflictingItem   = errors.New("sidebar item sets both link and autogenerate")
	ErrUnresolvableLink  = errors.New("sidebar link does not match any page")
	ErrNoGroups          = errors.New("sidebar has no groups")
	ErrInvalidAutogenDir = errors.New("autogenerate prefix must be route-like")
)

// File is the on-disk sidebar document.
type File struct {
	Groups []Group `yaml:"groups"`
}

// Group is one collapsible section of the navigation tree.
type Group struct {
	Label        string `yaml:"label"`
	Items        []Item `yaml:"items"`
	Autogenerate string `yaml:"autogenerate"` // route prefix, e.g. /docs/reference/
}

// Item is a single navigation entry.
type Item struct {
	Label string `yaml:"label"`
	Link  string `yaml:"link"`
}

// Load reads and validates a sidebar YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from site config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSidebarNotFound, path)
		}
		return nil, fmt.Errorf("reading sidebar: %w", err)
	}

	var f File
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSidebarParse, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks structural rules without resolving links against pages.
func (f *File) Validate() error {
	if len(f.Groups) == 0 {
		return ErrNoGroups
	}
	for _, g := range f.Groups {
		if strings.TrimSpace(g.Label) == "" {
			return ErrEmptyLabel
		}
		if g.Autogenerate != "" {
			if len(g.Items) > 0 {
				return fmt.Errorf("%w: group %q", ErrConflictingItem, g.Label)
			}
			if !strings.HasPrefix(g.Autogenerate, "/") {
				return fmt.Errorf("%w: %q", ErrInvalidAutogenDir, g.Autogenerate)
			}
			continue
		}
		for _, it := range g.Items {
			if strings.TrimSpace(it.Label) == "" {
				return fmt.Errorf("%w: in group %q", ErrEmptyLabel, g.Label)
			}
			if it.Link == "" {
				return fmt.Errorf("%w: %q in group %q", ErrEmptyLink, it.Label, g.Label)
			}
		}
	}
	return nil
}

// Resolve expands autogenerate groups from discovered pages and verifies that
// every internal link targets a known route. External links (http/https) are
// passed through. The result is ready for the layout template.
func (f *File) Resolve(pages []content.Page) ([]Group, error) {
	routes := make(map[string]content.Page, len(pages))
	for _, p := range pages {
		routes[p.Route] = p
	}

	resolved := make([]Group, 0, len(f.Groups))
	for _, g := range f.Groups {
		if g.Autogenerate != "" {
			items := autogenItems(g.Autogenerate, pages)
			resolved = append(resolved, Group{Label: g.Label, Items: items})
			continue
		}
		for _, it := range g.Items {
			if isExternal(it.Link) {
				continue
			}
			if _, ok := routes[normalizeRoute(it.Link)]; !ok {
				return nil, fmt.Errorf("%w: %q -> %s", ErrUnresolvableLink, it.Label, it.Link)
			}
		}
		resolved = append(resolved, g)
	}
	return resolved, nil
}

func autogenItems(prefix string, pages []content.Page) []Item {
	prefix = normalizeRoute(prefix)

	var matched []content.Page
	for _, p := range pages {
		if strings.HasPrefix(p.Route, prefix) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Route < matched[j].Route })

	items := make([]Item, 0, len(matched))
	for _, p := range matched {
		items = append(items, Item{Label: labelFromRoute(p.Route), Link: p.Route})
	}
	return items
}

// labelFromRoute derives a fallback label from the last route segment.
// The build replaces it with the page title once frontmatter is loaded.
func labelFromRoute(route string) string {
	seg := strings.Trim(route, "/")
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	seg = strings.ReplaceAll(seg, "-", " ")
	if seg == "" {
		return "/"
	}
	return strings.ToUpper(seg[:1]) + seg[1:]
}

func normalizeRoute(link string) string {
	if !strings.HasSuffix(link, "/") {
		link += "/"
	}
	return link
}

func isExternal(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
