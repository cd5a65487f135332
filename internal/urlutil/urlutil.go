// Package urlutil provides URL path joining helpers for base-path aware sites.
package urlutil

import "strings"

// Join concatenates URL path segments without doubling or dropping slashes.
// The result keeps the leading slash of the first non-empty segment and never
// ends with a trailing slash unless the result is exactly "/".
//
// Examples:
//   - Join("/docs", "guide")   -> "/docs/guide"
//   - Join("/docs/", "/guide") -> "/docs/guide"
//   - Join("", "guide")        -> "guide"
//   - Join("/", "/")           -> "/"
func Join(segments ...string) string {
	var parts []string
	leading := false
	first := true
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if first && strings.HasPrefix(seg, "/") {
			leading = true
		}
		first = false
		trimmed := strings.Trim(seg, "/")
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	joined := strings.Join(parts, "/")
	if leading {
		joined = "/" + joined
	}
	return joined
}

// IsRootRelative reports whether a URL path is root-relative: it starts with
// exactly one slash. Protocol-relative URLs ("//host/...") are not.
func IsRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
