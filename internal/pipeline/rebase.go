package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// LinkRebaser rewrites root-relative anchor hrefs so that generated links
// keep resolving when the site is deployed under a subpath (e.g. /docs/
// instead of /). Construct once per build; safe for concurrent use since the
// normalized base path is read-only after construction.
//
// Only root-relative hrefs are rewritten. Absolute URLs, relative paths,
// fragments, and protocol-relative URLs either don't need rebasing or would
// be corrupted by it, so they pass through untouched. Hrefs already carrying
// the base path are left alone, which makes the transform idempotent.
type LinkRebaser struct {
	base    string
	enabled bool
}

// NewLinkRebaser creates a LinkRebaser for the given base path. An empty base
// path means no rebasing is configured: Rebase becomes a no-op. The base path
// is normalized once here; see NormalizeBasePath.
func NewLinkRebaser(basePath string) *LinkRebaser {
	if basePath == "" {
		return &LinkRebaser{}
	}
	return &LinkRebaser{
		base:    NormalizeBasePath(basePath),
		enabled: true,
	}
}

// BasePath returns the normalized base path, or "" when rebasing is not
// configured.
func (r *LinkRebaser) BasePath() string {
	if !r.enabled {
		return ""
	}
	return r.base
}

// NormalizeBasePath brings a base path to canonical form: leading slash
// added if missing, trailing slash stripped unless the path is exactly "/".
// The normalization is idempotent.
func NormalizeBasePath(base string) string {
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if len(base) > 1 && strings.HasSuffix(base, "/") {
		base = strings.TrimSuffix(base, "/")
	}
	return base
}

// Rebase walks the tree and rewrites qualifying anchor hrefs in place.
// Without a configured base path the tree is left untouched.
func (r *LinkRebaser) Rebase(doc *html.Node) {
	if !r.enabled {
		return
	}

	visitElements(doc, func(n *html.Node) {
		if n.Data != "a" {
			return
		}
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rebased, ok := r.rebaseHref(attr.Val); ok {
				n.Attr[i].Val = rebased
			}
		}
	})
}

// RebaseHTML parses HTML content (document or fragment), rebases anchor
// hrefs, and renders it back. Without a configured base path the content is
// returned unchanged without parsing.
func (r *LinkRebaser) RebaseHTML(content string) (string, error) {
	if !r.enabled {
		return content, nil
	}

	doc, isFragment, err := ParseHTML(content)
	if err != nil {
		return "", err
	}

	r.Rebase(doc)

	return RenderHTML(doc, isFragment)
}

// rebaseHref returns the rebased href and whether a rewrite applies.
func (r *LinkRebaser) rebaseHref(href string) (string, bool) {
	// Only root-relative targets qualify. "//" is protocol-relative, not
	// root-relative.
	if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
		return "", false
	}

	// Already prefixed: rewriting again would double the base path.
	if strings.HasPrefix(href, r.base) {
		return "", false
	}

	return r.base + href, true
}
