package model

import "time"

type CommentStatus int

const (
	CommentStatusPending CommentStatus = iota
	CommentStatusApproved
	CommentStatusRejected
)

type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64 // 0 for anonymous commenters
	Author    string
	Email     string
	URL       string
	IP        string
	Body      string
	Status    CommentStatus
	CreatedAt time.Time
}
