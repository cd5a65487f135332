package pipeline

import (
	"strings"
	"testing"
)

func TestMinifier_MinifyHTML(t *testing.T) {
	t.Parallel()

	input := "<html>\n  <body>\n    <p>hello   world</p>\n  </body>\n</html>"

	got, err := NewMinifier().MinifyHTML(input)
	if err != nil {
		t.Fatalf("MinifyHTML() error = %v", err)
	}
	if len(got) >= len(input) {
		t.Errorf("minified output not smaller: %d >= %d", len(got), len(input))
	}
	if !strings.Contains(got, "hello world") {
		t.Errorf("minified output lost content: %q", got)
	}
}

func TestMinifier_MinifyCSS(t *testing.T) {
	t.Parallel()

	input := "body {\n  color: #ffffff;\n  margin: 0px;\n}\n"

	got, err := NewMinifier().MinifyCSS(input)
	if err != nil {
		t.Fatalf("MinifyCSS() error = %v", err)
	}
	if len(got) >= len(input) {
		t.Errorf("minified output not smaller: %d >= %d", len(got), len(input))
	}
	if !strings.Contains(got, "color") {
		t.Errorf("minified output lost declarations: %q", got)
	}
}
