package inmemory

import (
	"context"
	"testing"
	"time"

	"blogd/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCommentBus_PublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	bus := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub1, err := bus.Subscribe(ctx, 10)
	require.NoError(t, err)
	sub2, err := bus.Subscribe(ctx, 10)
	require.NoError(t, err)
	other, err := bus.Subscribe(ctx, 11)
	require.NoError(t, err)

	comment := model.Comment{ID: 1, PostID: 10, Body: "hi"}
	require.NoError(t, bus.Publish(context.Background(), 10, comment))

	for _, sub := range []<-chan model.Comment{sub1, sub2} {
		select {
		case got := <-sub:
			require.Equal(t, comment, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for the comment")
		}
	}

	select {
	case c := <-other:
		t.Fatalf("unexpected comment on another post's channel: %+v", c)
	default:
	}
}

func TestCommentBus_FullSubscriberIsSkipped(t *testing.T) {
	t.Parallel()

	bus := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := bus.Subscribe(ctx, 10)
	require.NoError(t, err)

	// the buffer holds one comment; the rest are dropped, not blocked on
	require.NoError(t, bus.Publish(context.Background(), 10, model.Comment{ID: 1, PostID: 10}))
	require.NoError(t, bus.Publish(context.Background(), 10, model.Comment{ID: 2, PostID: 10}))
	require.NoError(t, bus.Publish(context.Background(), 10, model.Comment{ID: 3, PostID: 10}))
}

func TestCommentBus_UnsubscribeOnContextDone(t *testing.T) {
	t.Parallel()

	bus := New(1)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := bus.Subscribe(ctx, 10)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-sub:
		require.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}

	// publishing after unsubscribe is a no-op
	require.NoError(t, bus.Publish(context.Background(), 10, model.Comment{ID: 1, PostID: 10}))
}
