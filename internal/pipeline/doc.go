// Package pipeline implements the per-page rendering pipeline.
//
// This package handles the stages between raw Markdown and the final HTML
// written to the output tree:
//   - Markdown preprocessing (line normalization, blank-line compression)
//   - Markdown to HTML conversion via Goldmark
//   - Base-path link rebasing for sites deployed under a subpath
//   - Optional HTML/CSS minification for production builds
//
// Frontmatter parsing, layout templating, and output writing are handled by
// the root sitegen package and its collaborators. This separation keeps the
// pipeline focused on document content, independent of site structure.
package pipeline
