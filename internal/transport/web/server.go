// Package web serves the farm dashboard as server-rendered HTML pages.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/guard"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/session"
	"github.com/heartmarshall/farmdash/internal/service/view"
	"github.com/heartmarshall/farmdash/internal/transport/middleware"
)

// sessionService defines the session operations the login pages use.
type sessionService interface {
	Resolve(ctx context.Context) (session.State, error)
	Login(ctx context.Context, input session.LoginInput) (*domain.User, error)
	Logout(ctx context.Context) error
}

// sessionGuard defines the check applied to protected pages.
type sessionGuard interface {
	Check(ctx context.Context, requestedPath string) (guard.Decision, error)
}

// navigator defines the page mounting used by the view handlers.
type navigator interface {
	Open(ctx context.Context, r route.Route) (*view.Page, error)
	Ensure(ctx context.Context, r route.Route) (*view.Page, error)
	Mounted(p *view.Page) bool
	Close()
}

// Options carries the optional parts of the server.
type Options struct {
	// Version is reported by /health.
	Version string
	// MetricsPath and Metrics expose a Prometheus handler. Nil disables it.
	MetricsPath string
	Metrics     http.Handler
	// HTTPMetrics, when set, observes every request.
	HTTPMetrics *middleware.HTTPMetrics
}

// Server holds the dashboard handlers.
type Server struct {
	log      *slog.Logger
	sessions sessionService
	guard    sessionGuard
	nav      navigator
	pages    *renderer
	health   *HealthHandler
	opts     Options
}

// NewServer creates a Server. It fails only when the embedded templates do
// not parse.
func NewServer(logger *slog.Logger, sessions sessionService, g sessionGuard, nav navigator, store storePinger, opts Options) (*Server, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Server{
		log:      logger.With("transport", "web"),
		sessions: sessions,
		guard:    g,
		nav:      nav,
		pages:    pages,
		health:   NewHealthHandler(store, opts.Version),
		opts:     opts,
	}, nil
}

// Routes builds the chi router with the full middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	var observe middleware.Middleware
	if s.opts.HTTPMetrics != nil {
		observe = s.opts.HTTPMetrics.Middleware()
	}
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(s.log),
		middleware.Recovery(s.log),
		observe,
	))

	r.Get("/", s.root)
	r.Get(route.PatternLogin, s.loginPage)
	r.Post(route.PatternLogin, s.login)
	r.Post("/logout", s.logout)
	r.Get("/healthz", s.health.Live)
	r.Get("/health", s.health.Health)
	if s.opts.Metrics != nil && s.opts.MetricsPath != "" {
		r.Handle(s.opts.MetricsPath, s.opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(s.guard, s.log))

		r.Get(route.PatternDashboard, s.showPage)
		r.Post(route.PatternDashboard+"/farms", s.createFarm)

		r.Get(route.PatternFarm, s.showPage)
		r.Post(route.PatternFarm+"/plots", s.createPlot)

		r.Get(route.PatternPlot, s.showPage)
		r.Post(route.PatternPlot+"/rows", s.createRow)
		r.Post(route.PatternPlot+"/edit", s.editPlot)
		r.Post(route.PatternPlot+"/actions", s.addAction)

		r.Get(route.PatternRow, s.showPage)
		r.Post(route.PatternRow+"/plants", s.createPlant)
		r.Post(route.PatternRow+"/plants/batch", s.createPlants)
		r.Post(route.PatternRow+"/edit", s.editRow)
		r.Post(route.PatternRow+"/actions", s.addAction)

		r.Get(route.PatternPlant, s.showPage)
		r.Post(route.PatternPlant, s.savePlant)
		r.Post(route.PatternPlant+"/actions", s.addAction)
	})

	r.NotFound(s.notFound)
	return r
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, tmplNotFound, pageData{Title: "Not found"})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data.User == nil {
		data.User = middleware.CurrentUser(r.Context())
	}
	if err := s.pages.render(w, status, name, data); err != nil {
		s.log.ErrorContext(r.Context(), "render failed", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, "Failed to render page.", http.StatusInternalServerError)
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.renderPage(w, r, status, tmplError, pageData{Title: "Error", Path: r.URL.Path, Message: msg})
}
