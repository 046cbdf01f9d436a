package inmemory

import (
	"context"
	"testing"
	"time"

	"blogd/internal/model"
	"blogd/internal/service"

	"github.com/stretchr/testify/require"
)

func TestCommentStorage_CreateComment(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()

	out, err := st.CreateComment(context.Background(), model.Comment{
		PostID: 10,
		UserID: 7,
		Author: "n",
		Body:   "hello",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), out.ID)
	require.WithinDuration(t, time.Now(), out.CreatedAt, time.Second)

	out2, err := st.CreateComment(context.Background(), model.Comment{PostID: 10, Body: "second"})
	require.NoError(t, err)
	require.Equal(t, int64(2), out2.ID)
}

func TestCommentStorage_GetLatest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := NewCommentStorage()

	_, err := st.GetLatestByUser(context.Background(), 7)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = st.GetLatestByIP(context.Background(), "192.0.2.4")
	require.ErrorIs(t, err, service.ErrNotFound)

	seed := []model.Comment{
		{PostID: 1, UserID: 7, IP: "192.0.2.4", Body: "first", CreatedAt: now.Add(-2 * time.Hour)},
		{PostID: 1, UserID: 7, IP: "192.0.2.4", Body: "second", CreatedAt: now.Add(-time.Hour)},
		{PostID: 1, UserID: 8, IP: "198.51.100.9", Body: "other", CreatedAt: now},
	}
	for _, c := range seed {
		_, err := st.CreateComment(context.Background(), c)
		require.NoError(t, err)
	}

	byUser, err := st.GetLatestByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "second", byUser.Body)

	byIP, err := st.GetLatestByIP(context.Background(), "192.0.2.4")
	require.NoError(t, err)
	require.Equal(t, "second", byIP.Body)
}

func TestCommentStorage_HasApprovedByUser(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()

	ok, err := st.HasApprovedByUser(context.Background(), 7)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = st.CreateComment(context.Background(), model.Comment{
		PostID: 1, UserID: 7, Body: "x", Status: model.CommentStatusPending,
	})
	require.NoError(t, err)

	ok, err = st.HasApprovedByUser(context.Background(), 7)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = st.CreateComment(context.Background(), model.Comment{
		PostID: 1, UserID: 7, Body: "y", Status: model.CommentStatusApproved,
	})
	require.NoError(t, err)

	ok, err = st.HasApprovedByUser(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCommentStorage_GetVisibleByPost(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := NewCommentStorage()

	// deliberately inserted out of time order
	seed := []model.Comment{
		{PostID: 1, UserID: 7, Body: "own pending", Status: model.CommentStatusPending, CreatedAt: now.Add(time.Hour)},
		{PostID: 1, UserID: 8, Body: "approved", Status: model.CommentStatusApproved, CreatedAt: now},
		{PostID: 1, UserID: 8, Body: "foreign pending", Status: model.CommentStatusPending, CreatedAt: now},
		{PostID: 1, UserID: 7, Body: "rejected", Status: model.CommentStatusRejected, CreatedAt: now},
		{PostID: 2, UserID: 7, Body: "other post", Status: model.CommentStatusApproved, CreatedAt: now},
	}
	for _, c := range seed {
		_, err := st.CreateComment(context.Background(), c)
		require.NoError(t, err)
	}

	// oldest first, same as the sql adapter
	asViewer, err := st.GetVisibleByPost(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, asViewer, 2)
	require.Equal(t, "approved", asViewer[0].Body)
	require.Equal(t, "own pending", asViewer[1].Body)

	asAnon, err := st.GetVisibleByPost(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, asAnon, 1)
	require.Equal(t, "approved", asAnon[0].Body)
}

func TestCommentStorage_GetVisibleByPost_TieBreakByID(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := NewCommentStorage()

	for _, body := range []string{"first", "second", "third"} {
		_, err := st.CreateComment(context.Background(), model.Comment{
			PostID: 1, Body: body, Status: model.CommentStatusApproved, CreatedAt: now,
		})
		require.NoError(t, err)
	}

	out, err := st.GetVisibleByPost(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "first", out[0].Body)
	require.Equal(t, "second", out[1].Body)
	require.Equal(t, "third", out[2].Body)
}
