package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"blogd/internal/model"
	"blogd/internal/service"
)

type CommentStorage struct {
	mu       sync.RWMutex
	seq      int64
	comments []model.Comment
}

func NewCommentStorage() *CommentStorage {
	return &CommentStorage{}
}

func (s *CommentStorage) CreateComment(_ context.Context, in model.Comment) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	in.ID = s.seq
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.comments = append(s.comments, in)
	return in, nil
}

func (s *CommentStorage) GetLatestByUser(_ context.Context, userID int64) (model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest(func(c model.Comment) bool { return c.UserID == userID })
}

func (s *CommentStorage) GetLatestByIP(_ context.Context, ip string) (model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest(func(c model.Comment) bool { return c.IP == ip })
}

// latest scans newest-to-oldest by creation time. Callers hold the lock.
func (s *CommentStorage) latest(match func(model.Comment) bool) (model.Comment, error) {
	var (
		found bool
		out   model.Comment
	)
	for _, c := range s.comments {
		if !match(c) {
			continue
		}
		if !found || c.CreatedAt.After(out.CreatedAt) || (c.CreatedAt.Equal(out.CreatedAt) && c.ID > out.ID) {
			out = c
			found = true
		}
	}
	if !found {
		return model.Comment{}, service.ErrNotFound
	}
	return out, nil
}

func (s *CommentStorage) HasApprovedByUser(_ context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.comments {
		if c.UserID == userID && c.Status == model.CommentStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (s *CommentStorage) GetVisibleByPost(_ context.Context, postID, viewerID int64) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Comment
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}
		visible := c.Status == model.CommentStatusApproved ||
			(viewerID > 0 && c.Status == model.CommentStatusPending && c.UserID == viewerID)
		if visible {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b model.Comment) int {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if a.CreatedAt.Before(b.CreatedAt) {
				return -1
			}
			return 1
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}
