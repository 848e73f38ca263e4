// Package util provides small shared helpers with no domain dependencies.
package util

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`[\s_]+`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// Slugify converts a title into a URL-safe slug: lowercase, alphanumerics
// and single dashes only. "Hello, World!" becomes "hello-world".
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// SplitTags splits a comma-separated tag string into trimmed, non-empty
// tag names.
func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// JoinTags normalizes a tag list back into the stored comma-separated form.
func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return strings.Join(cleaned, ",")
}
