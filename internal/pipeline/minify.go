package pipeline

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

// Minifier shrinks generated HTML and CSS for production builds.
// Safe for concurrent use; minify.M is stateless after configuration.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a Minifier for the media types the build emits.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	return &Minifier{m: m}
}

// MinifyHTML minifies an HTML document.
func (mn *Minifier) MinifyHTML(content string) (string, error) {
	out, err := mn.m.String("text/html", content)
	if err != nil {
		return "", fmt.Errorf("minifying HTML: %w", err)
	}
	return out, nil
}

// MinifyCSS minifies a stylesheet.
func (mn *Minifier) MinifyCSS(content string) (string, error) {
	out, err := mn.m.String("text/css", content)
	if err != nil {
		return "", fmt.Errorf("minifying CSS: %w", err)
	}
	return out, nil
}
