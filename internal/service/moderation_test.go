package service

import (
	"testing"

	"blogd/internal/model"

	"github.com/stretchr/testify/require"
)

func Test_countLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "no markup", content: "plain text", want: 0},
		{name: "anchor without href", content: `<a name="x">y</a>`, want: 0},
		{name: "single link", content: `<a href="https://example.com">x</a>`, want: 1},
		{name: "uppercase tag", content: `<A HREF="https://example.com">x</A>`, want: 1},
		{name: "attributes before href", content: `<a class="y" rel="nofollow" href="z">x</a>`, want: 1},
		{
			name:    "several links",
			content: `<a href="1">1</a> text <a href="2">2</a><a id="t" href="3">3</a>`,
			want:    3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, countLinks(tt.content))
		})
	}
}

func Test_classify(t *testing.T) {
	t.Parallel()

	linkyBody := `<a href="1">1</a><a href="2">2</a><a href="3">3</a>`

	tests := []struct {
		name           string
		skipApproval   bool
		approvalOnce   bool
		approvedBefore bool
		content        string
		maxLinks       int
		want           model.CommentStatus
	}{
		{name: "default is pending", content: "hi", maxLinks: 2, want: model.CommentStatusPending},
		{name: "skip approval", skipApproval: true, content: "hi", maxLinks: 2, want: model.CommentStatusApproved},
		{name: "approval once, approved before", approvalOnce: true, approvedBefore: true, content: "hi", maxLinks: 2, want: model.CommentStatusApproved},
		{name: "approval once, never approved", approvalOnce: true, content: "hi", maxLinks: 2, want: model.CommentStatusPending},
		{name: "approved before without the permission", approvedBefore: true, content: "hi", maxLinks: 2, want: model.CommentStatusPending},
		{name: "link override demotes", skipApproval: true, content: linkyBody, maxLinks: 2, want: model.CommentStatusPending},
		{name: "link override ignored while pending", content: linkyBody, maxLinks: 2, want: model.CommentStatusPending},
		{name: "links under threshold", skipApproval: true, content: `<a href="1">1</a>`, maxLinks: 2, want: model.CommentStatusApproved},
		{name: "zero threshold, no links", skipApproval: true, content: "hi", maxLinks: 0, want: model.CommentStatusApproved},
		{name: "zero threshold, one link", skipApproval: true, content: `<a href="1">1</a>`, maxLinks: 0, want: model.CommentStatusPending},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classify(tt.skipApproval, tt.approvalOnce, tt.approvedBefore, tt.content, tt.maxLinks)
			require.Equal(t, tt.want, got)

			// same inputs, same answer
			require.Equal(t, got, classify(tt.skipApproval, tt.approvalOnce, tt.approvedBefore, tt.content, tt.maxLinks))
		})
	}
}
