package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"blogd/internal/adapter/out/storage"
	"blogd/internal/model"
	"blogd/internal/service"
)

type PostStorage struct {
	mu    sync.RWMutex
	seq   int64
	byID  map[int64]model.Post
	order []int64 // insertion order of ids
}

func NewPostStorage() *PostStorage {
	return &PostStorage{
		byID: make(map[int64]model.Post),
	}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	in.ID = s.seq
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.byID[in.ID] = in
	s.order = append(s.order, in.ID)
	return in, nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if post, ok := s.byID[postID]; ok {
		return post, nil
	}
	return model.Post{}, service.ErrNotFound
}

func (s *PostStorage) GetPublishedPosts(_ context.Context, before time.Time, limit int) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.published(before)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *PostStorage) GetPublishedPostsWithCursor(_ context.Context, params storage.GetPostsParams) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.published(params.PublishedBefore)

	limit := params.Limit
	if limit <= 0 {
		limit = service.DefaultPostsLimit
	}

	out := make([]model.Post, 0, limit)

	switch params.Direction {
	case storage.DirectionAfter:
		for _, p := range all {
			if cursorLess(p, params.Cursor.Time, params.Cursor.ID) && len(out) < limit {
				out = append(out, p)
			}
		}
		return out, nil

	case storage.DirectionBefore:
		for i := len(all) - 1; i >= 0; i-- {
			p := all[i]
			if cursorGreater(p, params.Cursor.Time, params.Cursor.ID) && len(out) < limit {
				out = append(out, p)
			}
		}
		slices.Reverse(out)
		return out, nil

	default:
		return nil, storage.ErrDirectionUnset
	}
}

// published returns published, due posts newest first. Callers hold the lock.
func (s *PostStorage) published(before time.Time) []model.Post {
	out := make([]model.Post, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if p.Status == model.PostStatusPublished && p.PublishedAt.Before(before) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b model.Post) int {
		if !a.PublishedAt.Equal(b.PublishedAt) {
			if a.PublishedAt.After(b.PublishedAt) {
				return -1
			}
			return 1
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return out
}

func cursorLess(p model.Post, t time.Time, id int64) bool {
	if !p.PublishedAt.Equal(t) {
		return p.PublishedAt.Before(t)
	}
	return p.ID < id
}

func cursorGreater(p model.Post, t time.Time, id int64) bool {
	if !p.PublishedAt.Equal(t) {
		return p.PublishedAt.After(t)
	}
	return p.ID > id
}
