package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"blogd/internal/service"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ReadMoreMarker splits a post body into the feed excerpt and the rest.
const ReadMoreMarker = "<!-- readmore -->"

// MarkdownRenderer is the content transform: optional markdown conversion
// plus the readmore excerpt for feed views.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

func New() *MarkdownRenderer {
	return &MarkdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (r *MarkdownRenderer) Apply(_ context.Context, content string, rc service.RenderContext) (string, error) {
	truncated := false
	if rc.ReadMore {
		if before, _, found := strings.Cut(content, ReadMoreMarker); found {
			content = before
			truncated = true
		}
	}

	if rc.Markdown {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("markdown convert: %w", err)
		}
		content = buf.String()
	}

	if truncated {
		content += fmt.Sprintf(`<p><a class="readmore" href="/blog/%d">Read more</a></p>`, rc.Post.ID)
	}
	return content, nil
}
