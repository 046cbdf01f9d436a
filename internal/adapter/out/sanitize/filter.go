package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// CommentFilter strips dangerous markup from submitted comments while
// keeping the usual user-generated-content tags (links included, so the
// max-links moderation rule still sees them).
type CommentFilter struct {
	policy *bluemonday.Policy
}

func NewCommentFilter() *CommentFilter {
	return &CommentFilter{policy: bluemonday.UGCPolicy()}
}

func (f *CommentFilter) Filter(content string) string {
	return strings.TrimSpace(f.policy.Sanitize(content))
}
