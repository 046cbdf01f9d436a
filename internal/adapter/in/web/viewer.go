package web

import (
	"context"
	"net"
	"net/http"
	"strings"

	"blogd/internal/model"
)

type viewerCtxKey struct{}

// withViewer resolves the request's identity from the session. Full
// authentication is the host's concern; this only reads what a login flow
// left behind.
func (h *Handler) withViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := h.store.Get(r, flashSessionName)

		var viewer model.Viewer
		if id, ok := session.Values["user_id"].(int64); ok {
			viewer.ID = id
			viewer.Name, _ = session.Values["user_name"].(string)
			viewer.Email, _ = session.Values["user_email"].(string)
			viewer.URL, _ = session.Values["user_url"].(string)
		}

		ctx := context.WithValue(r.Context(), viewerCtxKey{}, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func viewerFromContext(ctx context.Context) model.Viewer {
	v, _ := ctx.Value(viewerCtxKey{}).(model.Viewer)
	return v
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
