package web

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

// Review comments are user input. goldmark drops raw HTML blocks, and
// bluemonday then filters the generated markup, so nothing a reviewer types
// reaches the page unsanitized.
var (
	commentMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	commentPolicy = newCommentPolicy()
)

func newCommentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// RenderMarkdown converts a markdown review comment to sanitized HTML. Empty
// input yields an empty string.
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := commentMarkdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}

	return commentPolicy.Sanitize(buf.String())
}

// RenderStars renders rating as filled and empty stars on the MaxRating
// scale. Ratings outside the scale are clamped.
func RenderStars(rating int) string {
	filled := min(max(rating, 0), model.MaxRating)
	return strings.Repeat("★", filled) + strings.Repeat("☆", model.MaxRating-filled)
}
