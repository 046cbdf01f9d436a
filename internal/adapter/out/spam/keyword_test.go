package spam

import (
	"context"
	"testing"

	"blogd/internal/model"

	"github.com/stretchr/testify/require"
)

func TestKeywordChecker_Check(t *testing.T) {
	t.Parallel()

	checker := NewKeywordChecker([]string{"Casino", " viagra ", ""})

	tests := []struct {
		name string
		body string
		want model.CommentStatus
	}{
		{name: "clean body keeps its status", body: "nice post!", want: model.CommentStatusApproved},
		{name: "blocked word", body: "visit my casino now", want: model.CommentStatusRejected},
		{name: "case insensitive", body: "VIAGRA deals", want: model.CommentStatusRejected},
		{name: "word inside markup", body: `<a href="x">casino</a>`, want: model.CommentStatusRejected},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := model.Comment{Body: tt.body, Status: model.CommentStatusApproved}
			checker.Check(context.Background(), &c)
			require.Equal(t, tt.want, c.Status)
		})
	}
}

func TestKeywordChecker_EmptyBlocklist(t *testing.T) {
	t.Parallel()

	checker := NewKeywordChecker(nil)

	c := model.Comment{Body: "anything goes", Status: model.CommentStatusPending}
	checker.Check(context.Background(), &c)
	require.Equal(t, model.CommentStatusPending, c.Status)
}
