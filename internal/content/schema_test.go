package content

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		collection Collection
		wantErr    error
	}{
		{
			name:       "docs minimal",
			raw:        "title: Getting Started\n",
			collection: CollectionDocs,
		},
		{
			name:       "docs with order and draft",
			raw:        "title: Internals\norder: 3\ndraft: true\n",
			collection: CollectionDocs,
		},
		{
			name:       "missing title",
			raw:        "description: no title here\n",
			collection: CollectionDocs,
			wantErr:    ErrMissingTitle,
		},
		{
			name:       "whitespace title",
			raw:        "title: \"   \"\n",
			collection: CollectionDocs,
			wantErr:    ErrMissingTitle,
		},
		{
			name:       "unknown key rejected",
			raw:        "title: Hello\ntitel: typo\n",
			collection: CollectionDocs,
			wantErr:    ErrFrontmatterParse,
		},
		{
			name:       "invalid yaml",
			raw:        "title: [unterminated\n",
			collection: CollectionDocs,
			wantErr:    ErrFrontmatterParse,
		},
		{
			name:       "blog valid",
			raw:        "title: Release Notes\ndate: \"2026-03-14\"\nauthor: Ada\ntags: [release]\n",
			collection: CollectionBlog,
		},
		{
			name:       "blog missing date",
			raw:        "title: Release Notes\n",
			collection: CollectionBlog,
			wantErr:    ErrMissingDate,
		},
		{
			name:       "blog malformed date",
			raw:        "title: Release Notes\ndate: \"14-03-2026\"\n",
			collection: CollectionBlog,
			wantErr:    ErrInvalidDate,
		},
		{
			name:       "talks valid without date",
			raw:        "title: Keynote\nevent: GopherCon\nspeaker: Ada\n",
			collection: CollectionTalks,
		},
		{
			name:       "talks valid with urls",
			raw:        "title: Keynote\ndate: \"2026-05-01\"\nslidesUrl: https://example.com/slides\nvideoUrl: http://example.com/video\n",
			collection: CollectionTalks,
		},
		{
			name:       "talks bad url scheme",
			raw:        "title: Keynote\nslidesUrl: ftp://example.com/slides\n",
			collection: CollectionTalks,
			wantErr:    ErrInvalidURL,
		},
		{
			name:       "talks bad date",
			raw:        "title: Keynote\ndate: \"soon\"\n",
			collection: CollectionTalks,
			wantErr:    ErrInvalidDate,
		},
		{
			name:       "papers valid",
			raw:        "title: Effects in Solis\nauthors: [Ada, Grace]\nvenue: POPL\nyear: 2026\npaperUrl: https://example.com/paper.pdf\n",
			collection: CollectionPapers,
		},
		{
			name:       "papers bad url",
			raw:        "title: Effects in Solis\npaperUrl: \"not a url\"\n",
			collection: CollectionPapers,
			wantErr:    ErrInvalidURL,
		},
		{
			name:       "title too long",
			raw:        "title: " + strings.Repeat("x", MaxTitleLength+1) + "\n",
			collection: CollectionDocs,
			wantErr:    ErrFieldTooLong,
		},
		{
			name:       "unknown collection",
			raw:        "title: Hello\n",
			collection: Collection("wiki"),
			wantErr:    ErrUnknownCollection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, err := ParseMeta([]byte(tt.raw), tt.collection)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMeta() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMeta() error = %v", err)
			}
			if meta.Title == "" {
				t.Error("ParseMeta() returned empty title on success")
			}
		})
	}
}

func TestMetaPublishedAt(t *testing.T) {
	t.Parallel()

	meta := &Meta{Title: "Post", Date: "2026-03-14"}
	got, err := meta.PublishedAt()
	if err != nil {
		t.Fatalf("PublishedAt() error = %v", err)
	}
	if got.Year() != 2026 || got.Month() != 3 || got.Day() != 14 {
		t.Errorf("PublishedAt() = %v, want 2026-03-14", got)
	}
}
