package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Preprocess normalizes Markdown before conversion: CRLF/CR line endings
// become LF and runs of blank lines collapse to one blank line. Editors and
// git checkouts on different platforms produce both variants; normalizing
// here keeps the rendered output byte-stable across contributors.
func Preprocess(content string) string {
	content = NormalizeLineEndings(content)
	content = CompressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
