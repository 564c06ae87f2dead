// Package richtext turns upstream product descriptions into HTML that is safe to embed.
package richtext

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer converts a description to sanitized HTML. Descriptions that already look
// like HTML are only sanitized; anything else is treated as Markdown.
type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(),
		policy:   newDescriptionPolicy(),
	}
}

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "ul", "li")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func (r *Renderer) Render(description string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ""
	}

	source := trimmed
	if !looksLikeHTML(trimmed) {
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(trimmed), &buf); err == nil {
			source = buf.String()
		}
	}
	return strings.TrimSpace(r.policy.Sanitize(source))
}

// Plain strips every tag, for contexts such as meta descriptions.
func (r *Renderer) Plain(description string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(r.Render(description)))
}

func looksLikeHTML(s string) bool {
	return strings.HasPrefix(s, "<") && strings.Contains(s, ">")
}
