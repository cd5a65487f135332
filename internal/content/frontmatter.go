package content

import (
	"bytes"
	"errors"
)

// ErrMissingClosingDelimiter indicates a frontmatter block is opened with
// --- but never closed.
var ErrMissingClosingDelimiter = errors.New("frontmatter missing closing delimiter")

var fmDelimiter = []byte("---\n")

// SplitFrontmatter separates YAML frontmatter (`---` delimited) from the
// Markdown body. If the document does not start with a frontmatter delimiter,
// had is false and body is the full input. Callers normalize line endings
// before splitting, so only LF delimiters are considered.
func SplitFrontmatter(src []byte) (frontmatter, body []byte, had bool, err error) {
	if !bytes.HasPrefix(src, fmDelimiter) {
		return nil, src, false, nil
	}

	rest := src[len(fmDelimiter):]

	// Degenerate empty block: "---\n---\n"
	if bytes.HasPrefix(rest, fmDelimiter) {
		return []byte{}, rest[len(fmDelimiter):], true, nil
	}

	closeSeq := []byte("\n---\n")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Closing delimiter at EOF without trailing newline
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")+1], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	return rest[:idx+1], rest[idx+len(closeSeq):], true, nil
}
