package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrCommentsDisabled = errors.New("comments disabled")
	ErrInvalidIdentity  = errors.New("name and email required")
	ErrRateLimited      = errors.New("rate limited")
	ErrInternalError    = errors.New("internal error")
)

// RateLimitError reports how long a commenter still has to wait before the
// min-idle window lets the next comment through.
type RateLimitError struct {
	WaitSeconds int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("please wait another %d seconds before commenting again", e.WaitSeconds)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
