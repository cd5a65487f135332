// Package highlight generates the syntax-highlighting stylesheet for code
// samples. Markdown rendering emits chroma CSS classes (see pipeline); this
// package produces the matching stylesheet once per build.
package highlight

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is used when the site config doesn't pick one.
const DefaultStyle = "github"

// ErrUnknownStyle indicates the configured highlight style is not in the
// chroma registry.
var ErrUnknownStyle = errors.New("unknown highlight style")

// ValidateStyle checks that name is a registered chroma style.
func ValidateStyle(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownStyle)
	}
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q (see 'sitegen help build' for available styles)", ErrUnknownStyle, name)
	}
	return nil
}

// StyleNames returns every registered style name, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stylesheet renders the CSS for the named style, scoped to the classes the
// renderer emits. Returns ErrUnknownStyle for unregistered names.
func Stylesheet(name string) (string, error) {
	if err := ValidateStyle(name); err != nil {
		return "", err
	}

	formatter := html.New(html.WithClasses(true))
	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, styles.Registry[name]); err != nil {
		return "", fmt.Errorf("rendering highlight stylesheet: %w", err)
	}
	return buf.String(), nil
}
