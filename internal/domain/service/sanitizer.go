package service

// ContentSanitizer strips dangerous markup from user-supplied HTML before
// it is stored. Applied on write only; stored content is served as-is.
type ContentSanitizer interface {
	Sanitize(html string) string
}
