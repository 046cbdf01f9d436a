package spam

import (
	"context"
	"strings"

	"blogd/internal/model"
)

// KeywordChecker rejects comments whose body contains any blocklisted term.
// It mutates the comment's status in place, matching the hook contract: the
// pipeline never reads a return value from the spam check.
type KeywordChecker struct {
	blocklist []string
}

func NewKeywordChecker(blocklist []string) *KeywordChecker {
	lowered := make([]string, 0, len(blocklist))
	for _, w := range blocklist {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}
	return &KeywordChecker{blocklist: lowered}
}

func (k *KeywordChecker) Check(_ context.Context, c *model.Comment) {
	body := strings.ToLower(c.Body)
	for _, w := range k.blocklist {
		if strings.Contains(body, w) {
			c.Status = model.CommentStatusRejected
			return
		}
	}
}
