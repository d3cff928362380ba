package server

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lumensite/internal/config"
	"lumensite/internal/handlers/auth"
	"lumensite/internal/handlers/dashboard"
	"lumensite/internal/handlers/health"
	"lumensite/internal/handlers/pages"
	"lumensite/internal/middleware"
	"lumensite/internal/routes"
	"lumensite/web"
)

type Server struct {
	cfg  config.Config
	log  *zap.Logger
	auth *auth.Handler
}

func New(cfg config.Config, log *zap.Logger) *Server {
	return &Server{
		cfg:  cfg,
		log:  log,
		auth: auth.New(cfg, log),
	}
}

// Handler builds the site's router. The route table drives page registration;
// unmatched paths fall through to the router's default 404.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(s.log))
	r.Use(chimw.Recoverer)

	// Embedded static assets. Directory requests 404 instead of listing.
	r.Handle("/static/*", http.FileServer(http.FS(noListingFS{web.Assets})))

	// Operational endpoints
	r.Get(routes.Health, health.Handler)
	r.Method(http.MethodGet, routes.Metrics, promhttp.Handler())

	// Authentication
	r.Get(routes.AuthGoogle, s.auth.Begin)
	r.Get(routes.AuthGoogleCallback, s.auth.Callback)
	r.Get(routes.LogoutGoogle, s.auth.Logout)

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithUser(s.auth))
		for _, b := range routes.Table() {
			r.Get(b.Path, pages.Handler(b, s.log))
		}

		r.Get(routes.Dashboard, dashboard.Handler(s.log))
		r.Post(routes.Dashboard, dashboard.Handler(s.log))
		r.Get(routes.ReportDownload, dashboard.Download(s.log))
		r.Post(routes.ReportDownload, dashboard.Download(s.log))
	})

	return r
}

// noListingFS hides directories so the file server cannot render an index of
// the embedded assets.
type noListingFS struct {
	fs.FS
}

func (n noListingFS) Open(name string) (fs.File, error) {
	f, err := n.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

// ListenAndServe runs the server until it fails or ctx is canceled, then
// shuts down gracefully within the configured write timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
