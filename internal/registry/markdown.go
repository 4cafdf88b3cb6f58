package registry

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown   = goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
	bodyPolicy = newBodyHTMLPolicy()
)

func newBodyHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// renderMarkdown converts authored markdown into sanitized HTML.
func renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(strings.TrimSpace(src)), &buf); err != nil {
		return "", fmt.Errorf("registry: render markdown: %w", err)
	}
	return strings.TrimSpace(bodyPolicy.Sanitize(buf.String())), nil
}

// mustRenderMarkdown is used for compiled-in copy where a failure is a programming error.
func mustRenderMarkdown(src string) string {
	html, err := renderMarkdown(src)
	if err != nil {
		panic(err)
	}
	return html
}
