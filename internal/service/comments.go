package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogd/internal/model"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=comments.go -destination=./comments_mock.go -package=service
type CommentStorage interface {
	CreateComment(ctx context.Context, c model.Comment) (model.Comment, error)
	GetLatestByUser(ctx context.Context, userID int64) (model.Comment, error)
	GetLatestByIP(ctx context.Context, ip string) (model.Comment, error)
	HasApprovedByUser(ctx context.Context, userID int64) (bool, error)
	GetVisibleByPost(ctx context.Context, postID, viewerID int64) ([]model.Comment, error)
}

// ContentFilter sanitizes submitted comment markup before it is stored.
type ContentFilter interface {
	Filter(content string) string
}

// SpamChecker inspects a constructed, unsaved comment and may mutate its
// status (typically to rejected) before persistence.
type SpamChecker interface {
	Check(ctx context.Context, c *model.Comment)
}

type CommentBus interface {
	Publish(ctx context.Context, postID int64, c model.Comment) error
	Subscribe(ctx context.Context, postID int64) (<-chan model.Comment, error)
}

// TxManager runs fn inside a storage transaction. The rate-limit lookup and
// the insert share it so two near-simultaneous submissions cannot both slip
// past the idle check.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommentPolicy is the configured behavior of the submission pipeline.
type CommentPolicy struct {
	// MinIdle is the minimum time between two comments from the same
	// identity. Zero disables the gate.
	MinIdle time.Duration
	// MaxLinks demotes an otherwise approved comment to pending when the
	// raw content has at least this many hyperlinks. Zero means any link.
	MaxLinks int
	// RequireNameAndEmail rejects anonymous submissions without both.
	RequireNameAndEmail bool
}

type CommentService struct {
	commentStorage CommentStorage
	postStorage    PostStorage
	access         AccessChecker
	filter         ContentFilter
	spam           SpamChecker
	bus            CommentBus
	txManager      TxManager
	policy         CommentPolicy
	now            func() time.Time
}

func NewCommentService(
	commentStorage CommentStorage,
	postStorage PostStorage,
	access AccessChecker,
	filter ContentFilter,
	spam SpamChecker,
	bus CommentBus,
	txManager TxManager,
	policy CommentPolicy,
) *CommentService {
	return &CommentService{
		commentStorage: commentStorage,
		postStorage:    postStorage,
		access:         access,
		filter:         filter,
		spam:           spam,
		bus:            bus,
		txManager:      txManager,
		policy:         policy,
		now:            time.Now,
	}
}

// Submit runs a comment submission through the moderation gates and persists
// it. Each gate aborts the whole pipeline with a typed error and nothing is
// stored. The gates and the insert run in one transaction.
func (s *CommentService) Submit(ctx context.Context, req SubmitCommentRequest) (SubmitResult, error) {
	if err := validator.New().Struct(req); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var out SubmitResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.submit(ctx, req)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	s.bus.Publish(ctx, out.Comment.PostID, out.Comment)
	return out, nil
}

func (s *CommentService) submit(ctx context.Context, req SubmitCommentRequest) (SubmitResult, error) {
	viewer := req.Viewer
	now := s.now()

	if !s.access.HasAccess(viewer, PermPostComments) {
		return SubmitResult{}, fmt.Errorf("insufficient user rights: %w", ErrForbidden)
	}

	if err := s.checkMinIdle(ctx, viewer, req.ClientIP, now); err != nil {
		return SubmitResult{}, err
	}

	post, err := s.postStorage.GetPostByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return SubmitResult{}, fmt.Errorf("post %d not available: %w", req.PostID, ErrForbidden)
		}
		return SubmitResult{}, fmt.Errorf("loading post %d: %w", req.PostID, err)
	}
	if post.Status != model.PostStatusPublished {
		return SubmitResult{}, fmt.Errorf("post %d not available: %w", req.PostID, ErrForbidden)
	}
	if !post.CommentsEnabled {
		return SubmitResult{}, ErrCommentsDisabled
	}

	author, email, url := req.Author, req.Email, req.URL
	if viewer.Authenticated() {
		author, email, url = viewer.Name, viewer.Email, viewer.URL
	} else if s.policy.RequireNameAndEmail && (author == "" || email == "") {
		return SubmitResult{}, ErrInvalidIdentity
	}

	comment := model.Comment{
		PostID:    post.ID,
		UserID:    viewer.ID,
		Author:    author,
		Email:     email,
		URL:       url,
		IP:        req.ClientIP,
		Body:      s.filter.Filter(req.Body),
		CreatedAt: now,
	}

	// The approved-once lookup deliberately uses the submitting viewer's
	// user id as-is; for anonymous viewers it is zero and never matches.
	approvedBefore, err := s.commentStorage.HasApprovedByUser(ctx, viewer.ID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("checking prior approvals: %w", err)
	}
	comment.Status = classify(
		s.access.HasAccess(viewer, PermSkipCommentApproval),
		s.access.HasAccess(viewer, PermCommentApprovalOnce),
		approvedBefore,
		req.Body,
		s.policy.MaxLinks,
	)

	s.spam.Check(ctx, &comment)

	saved, err := s.commentStorage.CreateComment(ctx, comment)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("saving comment: %w", err)
	}

	return SubmitResult{
		Comment:    saved,
		RedirectTo: fmt.Sprintf("/blog/%d#comment-%d", post.ID, saved.ID),
	}, nil
}

// Listen streams comments stored on a post for the lifetime of ctx. Only
// approved comments are forwarded; pending and rejected ones stay private to
// their authors. The returned channel closes when ctx is done.
func (s *CommentService) Listen(ctx context.Context, postID int64) (<-chan model.Comment, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}

	if _, err := s.postStorage.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	src, err := s.bus.Subscribe(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("subscribing to post %d: %w", postID, err)
	}

	out := make(chan model.Comment)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case c, ok := <-src:
				if !ok {
					return
				}
				if c.Status != model.CommentStatusApproved {
					continue
				}
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *CommentService) checkMinIdle(ctx context.Context, viewer model.Viewer, clientIP string, now time.Time) error {
	if s.policy.MinIdle <= 0 || s.access.HasAccess(viewer, PermSkipCommentMinIdle) {
		return nil
	}

	var (
		last model.Comment
		err  error
	)
	if viewer.Authenticated() {
		last, err = s.commentStorage.GetLatestByUser(ctx, viewer.ID)
	} else {
		last, err = s.commentStorage.GetLatestByIP(ctx, clientIP)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("loading latest comment: %w", err)
	}

	nextAllowed := last.CreatedAt.Add(s.policy.MinIdle)
	if now.Before(nextAllowed) {
		return &RateLimitError{WaitSeconds: int(nextAllowed.Sub(now) / time.Second)}
	}
	return nil
}
