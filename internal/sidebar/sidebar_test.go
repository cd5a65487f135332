package sidebar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solis-lang/sitegen/internal/content"
)

func writeSidebar(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sidebar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeSidebar(t, `groups:
  - label: Start Here
    items:
      - label: Introduction
        link: /docs/
      - label: Tour
        link: /docs/tour/
  - label: Reference
    autogenerate: /docs/reference/
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Groups, 2)
	assert.Equal(t, "Start Here", f.Groups[0].Label)
	assert.Len(t, f.Groups[0].Items, 2)
	assert.Equal(t, "/docs/reference/", f.Groups[1].Autogenerate)
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrSidebarNotFound)
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	path := writeSidebar(t, "groups: [bad\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrSidebarParse)
}

func TestLoad_UnknownKey(t *testing.T) {
	t.Parallel()

	path := writeSidebar(t, `groups:
  - label: Start
    itens:
      - label: Oops
        link: /docs/
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrSidebarParse)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    File
		wantErr error
	}{
		{
			name:    "no groups",
			file:    File{},
			wantErr: ErrNoGroups,
		},
		{
			name:    "empty group label",
			file:    File{Groups: []Group{{Label: "  "}}},
			wantErr: ErrEmptyLabel,
		},
		{
			name: "item missing link",
			file: File{Groups: []Group{
				{Label: "G", Items: []Item{{Label: "I"}}},
			}},
			wantErr: ErrEmptyLink,
		},
		{
			name: "item missing label",
			file: File{Groups: []Group{
				{Label: "G", Items: []Item{{Link: "/docs/"}}},
			}},
			wantErr: ErrEmptyLabel,
		},
		{
			name: "link and autogenerate conflict",
			file: File{Groups: []Group{
				{Label: "G", Autogenerate: "/docs/", Items: []Item{{Label: "I", Link: "/docs/"}}},
			}},
			wantErr: ErrConflictingItem,
		},
		{
			name: "autogenerate must be route-like",
			file: File{Groups: []Group{
				{Label: "G", Autogenerate: "docs/reference"},
			}},
			wantErr: ErrInvalidAutogenDir,
		},
		{
			name: "valid",
			file: File{Groups: []Group{
				{Label: "G", Items: []Item{{Label: "I", Link: "/docs/"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.file.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func docsPages(routes ...string) []content.Page {
	pages := make([]content.Page, 0, len(routes))
	for _, r := range routes {
		pages = append(pages, content.Page{Collection: content.CollectionDocs, Route: r})
	}
	return pages
}

func TestResolve_ExplicitLinks(t *testing.T) {
	t.Parallel()

	f := File{Groups: []Group{
		{Label: "Start", Items: []Item{
			{Label: "Intro", Link: "/docs/"},
			{Label: "Tour", Link: "/docs/tour"},
			{Label: "Source", Link: "https://example.com/repo"},
		}},
	}}

	groups, err := f.Resolve(docsPages("/docs/", "/docs/tour/"))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Items, 3)
}

func TestResolve_UnresolvableLink(t *testing.T) {
	t.Parallel()

	f := File{Groups: []Group{
		{Label: "Start", Items: []Item{{Label: "Ghost", Link: "/docs/ghost/"}}},
	}}

	_, err := f.Resolve(docsPages("/docs/"))
	assert.ErrorIs(t, err, ErrUnresolvableLink)
}

func TestResolve_Autogenerate(t *testing.T) {
	t.Parallel()

	f := File{Groups: []Group{
		{Label: "Reference", Autogenerate: "/docs/reference/"},
	}}

	pages := docsPages(
		"/docs/",
		"/docs/reference/builtin-types/",
		"/docs/reference/syntax/",
		"/docs/tour/",
	)

	groups, err := f.Resolve(pages)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "/docs/reference/builtin-types/", groups[0].Items[0].Link)
	assert.Equal(t, "Builtin types", groups[0].Items[0].Label)
	assert.Equal(t, "/docs/reference/syntax/", groups[0].Items[1].Link)
	assert.Equal(t, "Syntax", groups[0].Items[1].Label)
}

func TestResolve_AutogenerateEmptyPrefix(t *testing.T) {
	t.Parallel()

	f := File{Groups: []Group{
		{Label: "Empty", Autogenerate: "/docs/nothing-here/"},
	}}

	groups, err := f.Resolve(docsPages("/docs/"))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Items)
}
