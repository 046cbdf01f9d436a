package service

import (
	"regexp"

	"blogd/internal/model"
)

// Permissions consulted by the comment submission pipeline.
const (
	PermPostComments        = "post-comments"
	PermSkipCommentMinIdle  = "skip-comment-min-idle"
	PermSkipCommentApproval = "skip-comment-approval"
	PermCommentApprovalOnce = "comment-approval-required-once"
)

// Anchor tags with an href attribute, case-insensitive.
var linkPattern = regexp.MustCompile(`(?i)<a [^>]*href`)

func countLinks(content string) int {
	return len(linkPattern.FindAllStringIndex(content, -1))
}

// classify assigns the initial moderation status of a new comment. It is a
// pure function of its inputs so the same submission always classifies the
// same way.
//
// A viewer holding skip-comment-approval is approved outright. A viewer
// holding comment-approval-required-once is approved once any earlier comment
// of theirs has been approved. Everyone else starts out pending. An approved
// comment is demoted back to pending when the raw submitted content carries
// maxLinks or more hyperlinks; a threshold of zero means any link demotes.
func classify(skipApproval, approvalOnce, approvedBefore bool, rawContent string, maxLinks int) model.CommentStatus {
	status := model.CommentStatusPending
	switch {
	case skipApproval:
		status = model.CommentStatusApproved
	case approvalOnce && approvedBefore:
		status = model.CommentStatusApproved
	}

	if status == model.CommentStatusApproved {
		threshold := maxLinks
		if threshold <= 0 {
			threshold = 1
		}
		if countLinks(rawContent) >= threshold {
			status = model.CommentStatusPending
		}
	}
	return status
}
