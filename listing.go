package sitegen

import (
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"sort"
	"time"

	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/fileutil"
	"github.com/solis-lang/sitegen/internal/sidebar"
)

// listingTitles are the page titles of synthesized collection indexes.
var listingTitles = map[content.Collection]string{
	content.CollectionBlog:   "Blog",
	content.CollectionTalks:  "Talks",
	content.CollectionPapers: "Papers",
}

// renderListings synthesizes index pages for collections that don't have an
// index.md of their own. Docs is excluded: its entry point is the sidebar.
func (s *Service) renderListings(ctx context.Context, pages []page, groups []sidebar.Group) ([]PageResult, error) {
	indexed := make(map[string]bool)
	byCollection := make(map[content.Collection][]page)
	for _, p := range pages {
		indexed[p.Route] = true
		byCollection[p.Collection] = append(byCollection[p.Collection], p)
	}

	var results []PageResult
	for _, collection := range content.Collections {
		title, ok := listingTitles[collection]
		if !ok {
			continue
		}
		route := "/" + string(collection) + "/"
		if indexed[route] {
			continue
		}
		members := byCollection[collection]
		if len(members) == 0 {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		result := PageResult{
			Route:      route,
			OutputPath: filepath.Join(s.cfg.Paths.Output, string(collection), "index.html"),
		}

		out, err := s.renderListingPage(collection, title, members)
		if err != nil {
			return nil, fmt.Errorf("rendering %s listing: %w", collection, err)
		}
		if err := fileutil.WriteFile(result.OutputPath, []byte(out)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPageWrite, err)
		}

		result.Duration = time.Since(start)
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) renderListingPage(collection content.Collection, title string, members []page) (string, error) {
	entries := listingEntries(collection, members)

	fragment, err := s.renderListingFragment(entries)
	if err != nil {
		return "", err
	}

	full, err := s.renderLayout(layoutData{
		SiteName:  s.cfg.Site.Name,
		Tagline:   s.cfg.Site.Tagline,
		Title:     title,
		ShowTitle: true,
		AssetPath: s.assetPath(),
		Content:   template.HTML(fragment), // #nosec G203 -- produced by our own template
	})
	if err != nil {
		return "", err
	}

	return s.finalize(full)
}

// listingEntries orders collection members for display: dated collections
// newest first, papers by year descending, ties broken by title.
func listingEntries(collection content.Collection, members []page) []listingEntry {
	entries := make([]listingEntry, 0, len(members))
	for _, m := range members {
		date := m.meta.Date
		if collection == content.CollectionPapers && m.meta.Year != 0 {
			date = fmt.Sprintf("%d", m.meta.Year)
		}
		entries = append(entries, listingEntry{
			Route:       m.Route,
			Title:       m.meta.Title,
			Date:        date,
			Description: m.meta.Description,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Title < entries[j].Title
	})
	return entries
}
