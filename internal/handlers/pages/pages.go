// Package pages turns route bindings into HTTP handlers that render the
// bound page component inside the layout shell.
package pages

import (
	"net/http"

	"go.uber.org/zap"

	"lumensite/internal/metrics"
	"lumensite/internal/middleware"
	"lumensite/internal/routes"
	"lumensite/web/ui"
)

// Handler renders the page bound to b. The navigation shell is part of the
// layout, so it is present in every response this handler writes.
func Handler(b routes.Binding, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := ui.Page(b.Kind, ui.PageData{
			Path:  b.Path,
			Title: b.Title,
			User:  middleware.UserFromContext(r.Context()),
		})
		if page == nil {
			log.Error("no page component for binding", zap.String("path", b.Path))
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}

		metrics.PageViews.WithLabelValues(b.Path).Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Render(w); err != nil {
			log.Error("page render failed", zap.String("path", b.Path), zap.Error(err))
		}
	}
}
