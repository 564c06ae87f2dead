package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	r := NewRenderer()

	got := r.Render("**Soft** cotton tee")
	assert.Equal(t, "<p><strong>Soft</strong> cotton tee</p>", got)
}

func TestRenderSanitizesHTML(t *testing.T) {
	r := NewRenderer()

	got := r.Render(`<p onclick="steal()">Great<script>alert(1)</script> fit</p>`)
	assert.Equal(t, "<p>Great fit</p>", got)
}

func TestRenderLinksAreNoFollow(t *testing.T) {
	r := NewRenderer()

	got := r.Render(`<a href="https://example.com">size guide</a>`)
	assert.Contains(t, got, `rel="nofollow"`)
	assert.Contains(t, got, `href="https://example.com"`)
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer()

	assert.Empty(t, r.Render("   "))
	assert.Empty(t, r.Plain(""))
}

func TestPlain(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, "Soft cotton tee", r.Plain("**Soft** cotton tee"))
}
