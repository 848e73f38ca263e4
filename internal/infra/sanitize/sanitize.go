// Package sanitize provides HTML sanitization for user-generated content.
// Uses bluemonday to strip dangerous HTML (script tags, event handlers,
// javascript: URLs) while keeping the small set of formatting tags the
// blog editor produces.
package sanitize

import (
	"blog/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type bluemondaySanitizer struct {
	policy *bluemonday.Policy
}

// New builds the shared sanitization policy. The allowed-tag list mirrors
// what the post editor emits: paragraphs, emphasis, lists, two heading
// levels, links and blockquotes.
func New() service.ContentSanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "strong", "em", "ul", "ol", "li", "h3", "h4", "blockquote")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(true)

	return &bluemondaySanitizer{policy: policy}
}

// Sanitize strips everything outside the allowed set. Must be called on all
// user-provided HTML before it is stored; stored content is served as-is.
func (s *bluemondaySanitizer) Sanitize(html string) string {
	if html == "" {
		return ""
	}

	return s.policy.Sanitize(html)
}
