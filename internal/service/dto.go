package service

import (
	"fmt"

	"blogd/internal/adapter/out/storage"
	"blogd/internal/model"
	"blogd/pkg/pagination"
)

// SubmitCommentRequest carries a raw comment submission. Author, Email and
// URL are only honored for anonymous viewers; authenticated viewers get them
// from their profile.
type SubmitCommentRequest struct {
	PostID   int64  `validate:"required,gt=0"`
	Body     string `validate:"required"`
	Author   string
	Email    string `validate:"omitempty,email"`
	URL      string
	Viewer   model.Viewer
	ClientIP string
}

// SubmitResult is returned on a successful submission. RedirectTo points at
// the post's permalink with a fragment anchor for the new comment.
type SubmitResult struct {
	Comment    model.Comment
	RedirectTo string
}

// PostView is a post prepared for display together with the comments the
// viewer is allowed to see.
type PostView struct {
	Post     model.Post
	Comments []model.Comment
}

func validatePagination(in pagination.PageRequest) error {
	beforeCursorProvided := in.BeforeCursor != nil && *in.BeforeCursor != ""
	afterCursorProvided := in.AfterCursor != nil && *in.AfterCursor != ""

	if beforeCursorProvided && afterCursorProvided {
		return fmt.Errorf("both cursors provided: %w", ErrInvalidRequest)
	}
	return nil
}

func toGetPostsParams(in pagination.PageRequest) (storage.GetPostsParams, error) {
	if err := validatePagination(in); err != nil {
		return storage.GetPostsParams{}, err
	}

	if in.Limit <= 0 {
		in.Limit = DefaultPostsLimit
	}
	in.Limit = min(in.Limit, MaxPostsLimit)

	before, err := pagination.Decode(in.BeforeCursor)
	if err != nil {
		return storage.GetPostsParams{}, fmt.Errorf("error decoding before-cursor: %w", err)
	}

	after, err := pagination.Decode(in.AfterCursor)
	if err != nil {
		return storage.GetPostsParams{}, fmt.Errorf("error decoding after-cursor: %w", err)
	}

	if before == nil && after == nil {
		return storage.GetPostsParams{}, fmt.Errorf("cursor is required: %w", ErrInvalidRequest)
	}

	var params storage.GetPostsParams
	params.Limit = in.Limit

	if before != nil {
		params.Cursor = *before
		params.Direction = storage.DirectionBefore
	} else {
		params.Cursor = *after
		params.Direction = storage.DirectionAfter
	}
	return params, nil
}
