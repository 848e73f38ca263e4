package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StripsScripts(t *testing.T) {
	s := New()

	out := s.Sanitize(`<p>hello</p><script>alert("xss")</script>`)
	assert.Equal(t, "<p>hello</p>", out)
}

func TestSanitize_KeepsAllowedFormatting(t *testing.T) {
	s := New()

	in := "<h3>Heading</h3><p><strong>bold</strong> and <em>italic</em></p><ul><li>item</li></ul>"
	assert.Equal(t, in, s.Sanitize(in))
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	s := New()

	out := s.Sanitize(`<p onclick="steal()">text</p>`)
	assert.Equal(t, "<p>text</p>", out)
}

func TestSanitize_Empty(t *testing.T) {
	s := New()

	assert.Equal(t, "", s.Sanitize(""))
}
