package middleware

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/markbates/goth"
	"go.uber.org/zap"
)

type ctxKey int

const userKey ctxKey = iota

// UserSource resolves the signed-in user for a request, if any.
type UserSource interface {
	CurrentUser(r *http.Request) *goth.User
}

// WithUser resolves the session user once per request and stores it in the
// request context for page handlers.
func WithUser(src UserSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := src.CurrentUser(r); user != nil {
				r = r.WithContext(ContextWithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContextWithUser returns ctx carrying the signed-in user.
func ContextWithUser(ctx context.Context, user *goth.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the signed-in user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *goth.User {
	user, _ := ctx.Value(userKey).(*goth.User)
	return user
}

// RequestLogger logs one line per request with method, path, status, size and
// duration.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}
