package inmemory

import (
	"context"
	"sync"

	"blogd/internal/model"
)

// CommentBus fans freshly stored comments out to per-post subscribers. Slow
// subscribers are skipped rather than blocking the submit path.
type CommentBus struct {
	mu   sync.RWMutex
	subs map[int64]map[chan model.Comment]struct{}
	buf  int
}

func New(buf int) *CommentBus {
	if buf <= 0 {
		buf = 64
	}
	return &CommentBus{
		subs: make(map[int64]map[chan model.Comment]struct{}),
		buf:  buf,
	}
}

func (b *CommentBus) Subscribe(ctx context.Context, postID int64) (<-chan model.Comment, error) {
	ch := make(chan model.Comment, b.buf)

	b.mu.Lock()
	set, ok := b.subs[postID]
	if !ok {
		set = make(map[chan model.Comment]struct{})
		b.subs[postID] = set
	}
	set[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if set, ok := b.subs[postID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, postID)
			}
		}
		b.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (b *CommentBus) Publish(_ context.Context, postID int64, c model.Comment) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs[postID] {
		select {
		case ch <- c:
		default:
		}
	}
	return nil
}
