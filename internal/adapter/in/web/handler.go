package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"blogd/internal/model"
	"blogd/internal/service"
	"blogd/pkg/logger"
	"blogd/pkg/pagination"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

//go:embed templates/*.html
var templateFS embed.FS

const flashSessionName = "blogd"

type PostService interface {
	ListPublished(ctx context.Context, in pagination.PageRequest, now time.Time) (pagination.Page[model.Post], error)
	GetPublished(ctx context.Context, postID int64, viewer model.Viewer, now time.Time) (service.PostView, error)
}

type CommentService interface {
	Submit(ctx context.Context, req service.SubmitCommentRequest) (service.SubmitResult, error)
	Listen(ctx context.Context, postID int64) (<-chan model.Comment, error)
}

type Handler struct {
	posts     PostService
	comments  CommentService
	store     sessions.Store
	templates *template.Template
}

func NewHandler(posts PostService, comments CommentService, store sessions.Store) *Handler {
	return &Handler{
		posts:     posts,
		comments:  comments,
		store:     store,
		templates: template.Must(template.New("").Funcs(template.FuncMap{
			// post bodies are already sanitized/rendered server side
			"safe": func(s string) template.HTML { return template.HTML(s) },
		}).ParseFS(templateFS, "templates/*.html")),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(h.withViewer)

	r.Get("/blog", h.Feed)
	r.Get("/blog/{id}", h.Post)
	r.Get("/blog/{id}/comments/stream", h.CommentStream)
	r.Post("/blog/comment", h.SubmitComment)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

type feedData struct {
	Posts   []model.Post
	Next    *string
	Flashes []any
}

func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	var in pagination.PageRequest
	if after := r.URL.Query().Get("after"); after != "" {
		in.AfterCursor = &after
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		in.Limit = n
	}

	page, err := h.posts.ListPublished(r.Context(), in, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		logger.FromContext(r.Context()).Error("listing posts", "error", err)
		http.Error(w, "Whoops, something went wrong!", http.StatusInternalServerError)
		return
	}

	data := feedData{Posts: page.Items, Flashes: h.popFlashes(w, r)}
	if page.HasNextPage {
		data.Next = page.EndCursor
	}
	h.render(w, r, "index.html", data)
}

type postData struct {
	Post     model.Post
	Comments []model.Comment
	Viewer   model.Viewer
	Flashes  []any
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found!", http.StatusNotFound)
		return
	}

	viewer := viewerFromContext(r.Context())

	view, err := h.posts.GetPublished(r.Context(), postID, viewer, time.Now())
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "Post not found!", http.StatusNotFound)
		return
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "Unable to access this post!", http.StatusForbidden)
		return
	case err != nil:
		logger.FromContext(r.Context()).Error("loading post", "post_id", postID, "error", err)
		http.Error(w, "Whoops, something went wrong!", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "post.html", postData{
		Post:     view.Post,
		Comments: view.Comments,
		Viewer:   viewer,
		Flashes:  h.popFlashes(w, r),
	})
}

type streamComment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentStream pushes newly approved comments on a post as server-sent
// events until the client disconnects.
func (h *Handler) CommentStream(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found!", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch, err := h.comments.Listen(r.Context(), postID)
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidRequest):
		http.Error(w, "Post not found!", http.StatusNotFound)
		return
	case err != nil:
		logger.FromContext(r.Context()).Error("opening comment stream", "post_id", postID, "error", err)
		http.Error(w, "Whoops, something went wrong!", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case c, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(streamComment{
				ID:        c.ID,
				Author:    c.Author,
				Body:      c.Body,
				CreatedAt: c.CreatedAt,
			})
			if err != nil {
				logger.FromContext(r.Context()).Error("encoding stream event", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: comment\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func (h *Handler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	postID, _ := strconv.ParseInt(r.PostFormValue("post_id"), 10, 64)

	req := service.SubmitCommentRequest{
		PostID:   postID,
		Body:     r.PostFormValue("content"),
		Author:   r.PostFormValue("author"),
		Email:    r.PostFormValue("email"),
		URL:      r.PostFormValue("url"),
		Viewer:   viewerFromContext(r.Context()),
		ClientIP: clientIP(r),
	}

	res, err := h.comments.Submit(r.Context(), req)
	if err != nil {
		h.flash(w, r, submitErrorMessage(r.Context(), err))
		http.Redirect(w, r, previousURL(r, postID), http.StatusSeeOther)
		return
	}

	h.flash(w, r, "Thanks for commenting!")
	http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
}

// submitErrorMessage maps pipeline failures to user-facing text. Anything
// outside the known taxonomy is logged and reported generically.
func submitErrorMessage(ctx context.Context, err error) string {
	var rle *service.RateLimitError
	switch {
	case errors.As(err, &rle):
		return "Please wait another " + strconv.Itoa(rle.WaitSeconds) + " seconds before commenting again."
	case errors.Is(err, service.ErrCommentsDisabled):
		return "Comments have been disabled for this post."
	case errors.Is(err, service.ErrInvalidIdentity):
		return "Please provide valid name and email."
	case errors.Is(err, service.ErrForbidden):
		return "Insufficient user rights."
	case errors.Is(err, service.ErrInvalidRequest):
		return "Please provide a valid comment."
	default:
		logger.FromContext(ctx).Error("comment submission failed", "error", err)
		return "Whoops, something went wrong!"
	}
}

func previousURL(r *http.Request, postID int64) string {
	if ref := r.Header.Get("Referer"); ref != "" {
		return ref
	}
	if postID > 0 {
		return "/blog/" + strconv.FormatInt(postID, 10)
	}
	return "/blog"
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := h.store.Get(r, flashSessionName)
	session.AddFlash(msg)
	if err := session.Save(r, w); err != nil {
		logger.FromContext(r.Context()).Error("saving session", "error", err)
	}
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []any {
	session, _ := h.store.Get(r, flashSessionName)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		if err := session.Save(r, w); err != nil {
			logger.FromContext(r.Context()).Error("saving session", "error", err)
		}
	}
	return flashes
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromContext(r.Context()).Error("rendering template", "template", name, "error", err)
	}
}
