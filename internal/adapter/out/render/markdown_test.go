package render

import (
	"context"
	"testing"

	"blogd/internal/model"
	"blogd/internal/service"

	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer_Apply(t *testing.T) {
	t.Parallel()

	r := New()
	post := model.Post{ID: 7}

	t.Run("plain html passes through", func(t *testing.T) {
		t.Parallel()

		out, err := r.Apply(context.Background(), "<p>hello</p>", service.RenderContext{Post: post})
		require.NoError(t, err)
		require.Equal(t, "<p>hello</p>", out)
	})

	t.Run("markdown is converted", func(t *testing.T) {
		t.Parallel()

		out, err := r.Apply(context.Background(), "some **bold** text", service.RenderContext{Post: post, Markdown: true})
		require.NoError(t, err)
		require.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("raw html survives markdown conversion", func(t *testing.T) {
		t.Parallel()

		out, err := r.Apply(context.Background(), `<div class="x">kept</div>`, service.RenderContext{Post: post, Markdown: true})
		require.NoError(t, err)
		require.Contains(t, out, `<div class="x">kept</div>`)
	})

	t.Run("readmore cuts the body and links the post", func(t *testing.T) {
		t.Parallel()

		body := "intro " + ReadMoreMarker + " the rest"
		out, err := r.Apply(context.Background(), body, service.RenderContext{Post: post, ReadMore: true})
		require.NoError(t, err)
		require.Contains(t, out, "intro")
		require.NotContains(t, out, "the rest")
		require.Contains(t, out, `href="/blog/7"`)
		require.Contains(t, out, "Read more")
	})

	t.Run("readmore without a marker keeps the full body", func(t *testing.T) {
		t.Parallel()

		out, err := r.Apply(context.Background(), "short body", service.RenderContext{Post: post, ReadMore: true})
		require.NoError(t, err)
		require.Equal(t, "short body", out)
		require.NotContains(t, out, "Read more")
	})

	t.Run("marker is kept on the single post view", func(t *testing.T) {
		t.Parallel()

		body := "intro " + ReadMoreMarker + " the rest"
		out, err := r.Apply(context.Background(), body, service.RenderContext{Post: post})
		require.NoError(t, err)
		require.Contains(t, out, "the rest")
	})
}
