package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/solis-lang/sitegen/internal/yamlutil"
)

// Sentinel errors for frontmatter schema validation.
var (
	ErrMissingTitle       = errors.New("frontmatter missing required title")
	ErrMissingDate        = errors.New("frontmatter missing required date")
	ErrInvalidDate        = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidURL         = errors.New("invalid URL in frontmatter")
	ErrFieldTooLong       = errors.New("frontmatter field exceeds maximum length")
	ErrFrontmatterParse   = errors.New("failed to parse frontmatter")
	ErrUnknownCollection  = errors.New("unknown content collection")
	ErrMissingFrontmatter = errors.New("page has no frontmatter")
)

// Field length limits keep generated <title> and listing pages sane.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxAuthorLength      = 100
	MaxEventLength       = 200
	MaxVenueLength       = 200
	MaxURLLength         = 2048
)

// Collection identifies a content collection. Each collection has its own
// frontmatter schema and listing behavior.
type Collection string

const (
	CollectionDocs   Collection = "docs"
	CollectionBlog   Collection = "blog"
	CollectionTalks  Collection = "talks"
	CollectionPapers Collection = "papers"
)

// Collections lists every known collection in listing order.
var Collections = []Collection{CollectionDocs, CollectionBlog, CollectionTalks, CollectionPapers}

// Meta is the decoded, validated frontmatter of one page. Fields not used by
// a page's collection stay at their zero value.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Order       int      `yaml:"order"`  // docs: sidebar/listing position
	Draft       bool     `yaml:"draft"`  // excluded from builds unless requested
	Date        string   `yaml:"date"`   // blog, talks: YYYY-MM-DD
	Author      string   `yaml:"author"` // blog
	Tags        []string `yaml:"tags"`   // blog
	Event       string   `yaml:"event"`  // talks
	Speaker     string   `yaml:"speaker"`
	SlidesURL   string   `yaml:"slidesUrl"`
	VideoURL    string   `yaml:"videoUrl"`
	Authors     []string `yaml:"authors"` // papers
	Venue       string   `yaml:"venue"`
	Year        int      `yaml:"year"`
	PaperURL    string   `yaml:"paperUrl"`
	DOI         string   `yaml:"doi"`
}

// ParseMeta decodes frontmatter YAML strictly and validates it against the
// collection's schema. Unknown keys are rejected so typos fail the build.
func ParseMeta(raw []byte, c Collection) (*Meta, error) {
	var meta Meta
	if err := yamlutil.UnmarshalStrict(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatterParse, err)
	}
	if err := meta.Validate(c); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Validate checks the schema rules for the given collection.
func (m *Meta) Validate(c Collection) error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrMissingTitle
	}
	if err := checkLen("title", m.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := checkLen("description", m.Description, MaxDescriptionLength); err != nil {
		return err
	}

	switch c {
	case CollectionDocs:
		return nil
	case CollectionBlog:
		if m.Date == "" {
			return ErrMissingDate
		}
		if err := validateDate(m.Date); err != nil {
			return err
		}
		return checkLen("author", m.Author, MaxAuthorLength)
	case CollectionTalks:
		if m.Date != "" {
			if err := validateDate(m.Date); err != nil {
				return err
			}
		}
		if err := checkLen("event", m.Event, MaxEventLength); err != nil {
			return err
		}
		if err := validateOptionalURL("slidesUrl", m.SlidesURL); err != nil {
			return err
		}
		return validateOptionalURL("videoUrl", m.VideoURL)
	case CollectionPapers:
		if err := checkLen("venue", m.Venue, MaxVenueLength); err != nil {
			return err
		}
		return validateOptionalURL("paperUrl", m.PaperURL)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
}

// PublishedAt parses the date field. Callers must only use it after Validate.
func (m *Meta) PublishedAt() (time.Time, error) {
	return time.Parse("2006-01-02", m.Date)
}

func checkLen(field, value string, limit int) error {
	if len(value) > limit {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFieldTooLong, field, len(value), limit)
	}
	return nil
}

func validateDate(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return nil
}

func validateOptionalURL(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) > MaxURLLength {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrFieldTooLong, field, MaxURLLength)
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %s %q", ErrInvalidURL, field, value)
	}
	return nil
}
