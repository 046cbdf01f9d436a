package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogd/internal/adapter/out/storage"
	"blogd/internal/model"
	"blogd/pkg/pagination"
)

const (
	DefaultPostsLimit = 50
	MaxPostsLimit     = 250
)

//go:generate mockgen -source=posts.go -destination=./posts_mock.go -package=service
type PostStorage interface {
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	GetPublishedPosts(ctx context.Context, before time.Time, limit int) ([]model.Post, error)
	GetPublishedPostsWithCursor(ctx context.Context, params storage.GetPostsParams) ([]model.Post, error)
}

// RenderContext parameterizes a single content transform invocation.
type RenderContext struct {
	Post     model.Post
	Markdown bool
	ReadMore bool
}

// ContentRenderer turns stored markup into display markup. Implementations
// must not touch persisted state.
type ContentRenderer interface {
	Apply(ctx context.Context, content string, rc RenderContext) (string, error)
}

// AccessChecker answers whether a viewer holds a named permission.
type AccessChecker interface {
	HasAccess(viewer model.Viewer, permission string) bool
}

type PostService struct {
	postStorage    PostStorage
	commentStorage CommentStorage
	renderer       ContentRenderer
	access         AccessChecker
}

func NewPostService(postStorage PostStorage, commentStorage CommentStorage, renderer ContentRenderer, access AccessChecker) *PostService {
	return &PostService{
		postStorage:    postStorage,
		commentStorage: commentStorage,
		renderer:       renderer,
		access:         access,
	}
}

// ListPublished returns the feed of posts published before now, newest
// first. Each post carries its rendered body with the readmore break
// applied. An empty feed is not an error.
func (s *PostService) ListPublished(ctx context.Context, in pagination.PageRequest, now time.Time) (pagination.Page[model.Post], error) {
	var (
		posts []model.Post
		err   error
		page  pagination.Page[model.Post]
	)

	if err := validatePagination(in); err != nil {
		return page, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultPostsLimit
	}
	if limit > MaxPostsLimit {
		limit = MaxPostsLimit
	}
	peek := limit + 1

	afterProvided := in.AfterCursor != nil && *in.AfterCursor != ""
	beforeProvided := in.BeforeCursor != nil && *in.BeforeCursor != ""

	switch {
	case !afterProvided && !beforeProvided:
		posts, err = s.postStorage.GetPublishedPosts(ctx, now, peek)
		if err != nil {
			return page, err
		}

	default:
		params, err := toGetPostsParams(in)
		if err != nil {
			return page, err
		}
		params.Limit = peek
		params.PublishedBefore = now
		posts, err = s.postStorage.GetPublishedPostsWithCursor(ctx, params)
		if err != nil {
			return page, err
		}
	}

	if len(posts) == 0 {
		page.Items = nil
		page.Count = 0
		page.HasNextPage = false
		page.StartCursor = nil
		page.EndCursor = nil
		return page, nil
	}

	if len(posts) > limit {
		page.HasNextPage = true
		posts = posts[:limit]
	}

	for i := range posts {
		rendered, err := s.renderer.Apply(ctx, posts[i].Body, RenderContext{
			Post:     posts[i],
			Markdown: posts[i].Markdown,
			ReadMore: true,
		})
		if err != nil {
			return page, fmt.Errorf("rendering post %d: %w", posts[i].ID, err)
		}
		posts[i].RenderedBody = rendered
	}

	page.Items = posts
	page.Count = len(posts)

	startCursor := pagination.Cursor{
		Time: posts[0].PublishedAt,
		ID:   posts[0].ID,
	}
	endCursor := pagination.Cursor{
		Time: posts[len(posts)-1].PublishedAt,
		ID:   posts[len(posts)-1].ID,
	}

	page.StartCursor, page.EndCursor = startCursor.Encode(), endCursor.Encode()
	return page, nil
}

// GetPublished loads one published post for a viewer. Unpublished, missing
// and not-yet-due posts all come back as ErrNotFound; a post whose access
// rule rejects the viewer comes back as ErrForbidden. The attached comments
// are the approved ones plus the viewer's own pending ones.
func (s *PostService) GetPublished(ctx context.Context, postID int64, viewer model.Viewer, now time.Time) (PostView, error) {
	if postID <= 0 {
		return PostView{}, fmt.Errorf("postID must be > 0: %w", ErrNotFound)
	}

	post, err := s.postStorage.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PostView{}, ErrNotFound
		}
		return PostView{}, err
	}

	if post.Status != model.PostStatusPublished || !post.PublishedAt.Before(now) {
		return PostView{}, ErrNotFound
	}

	if post.AccessRule != "" && !s.access.HasAccess(viewer, post.AccessRule) {
		return PostView{}, ErrForbidden
	}

	viewerID := int64(0)
	if viewer.Authenticated() {
		viewerID = viewer.ID
	}
	comments, err := s.commentStorage.GetVisibleByPost(ctx, postID, viewerID)
	if err != nil {
		return PostView{}, fmt.Errorf("loading comments for post %d: %w", postID, err)
	}

	rendered, err := s.renderer.Apply(ctx, post.Body, RenderContext{
		Post:     post,
		Markdown: post.Markdown,
	})
	if err != nil {
		return PostView{}, fmt.Errorf("rendering post %d: %w", postID, err)
	}
	post.RenderedBody = rendered

	return PostView{Post: post, Comments: comments}, nil
}
