package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/farmdash/internal/adapter/farmapi"
	"github.com/heartmarshall/farmdash/internal/adapter/localstore"
	"github.com/heartmarshall/farmdash/internal/config"
	"github.com/heartmarshall/farmdash/internal/service/guard"
	"github.com/heartmarshall/farmdash/internal/service/loader"
	"github.com/heartmarshall/farmdash/internal/service/session"
	"github.com/heartmarshall/farmdash/internal/service/view"
	"github.com/heartmarshall/farmdash/internal/transport/middleware"
	"github.com/heartmarshall/farmdash/internal/transport/web"
)

// store is the persisted key-value state behind the session.
type store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Options adjust how New assembles the application.
type Options struct {
	// ConfigPath overrides CONFIG_PATH.
	ConfigPath string
	// StorePath overrides store.path.
	StorePath string
	// Ephemeral keeps the session in memory only.
	Ephemeral bool
	// LogOutput receives log records. Nil means stderr and sets the
	// process default logger.
	LogOutput io.Writer
	// LogLevel overrides log.level when non-empty.
	LogLevel string
}

// App is the wired object graph shared by the web server and the CLI.
type App struct {
	Config    *config.Config
	Log       *slog.Logger
	Store     store
	Registry  *prometheus.Registry
	API       *farmapi.Client
	Sessions  *session.Service
	Guard     *guard.Guard
	Loader    *loader.Loader
	Navigator *view.Navigator
}

// New loads the configuration and wires every component. Close releases the
// store.
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.StorePath != "" {
		cfg.Store.Path = opts.StorePath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	var logger *slog.Logger
	if opts.LogOutput == nil {
		logger = NewLogger(cfg.Log)
	} else {
		logger = NewLoggerTo(opts.LogOutput, cfg.Log)
	}

	var st store
	if opts.Ephemeral {
		st = localstore.NewMemory()
	} else {
		sq, err := localstore.OpenSQLite(ctx, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		st = sq
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clock := clockwork.NewRealClock()
	api := farmapi.New(cfg.API.BaseURL, cfg.API.Timeout, session.NewTokenStore(st), logger,
		farmapi.WithUserAgent(UserAgent(cfg.API.UserAgent)),
		farmapi.WithMetrics(farmapi.NewMetrics(reg)),
	)
	sessions := session.NewService(logger, api, st, clock)
	chains := loader.New(logger, api)
	nav := view.NewNavigator(chains, view.Deps{
		API:           api,
		Log:           logger,
		Clock:         clock,
		FlashDuration: cfg.View.FlashDuration,
	}, cfg.View.MaxStaleness)

	logger.Debug("application wired",
		slog.String("version", BuildVersion()),
		slog.String("api", cfg.API.BaseURL),
		slog.Bool("ephemeral", opts.Ephemeral),
	)

	return &App{
		Config:    cfg,
		Log:       logger,
		Store:     st,
		Registry:  reg,
		API:       api,
		Sessions:  sessions,
		Guard:     guard.New(logger, sessions),
		Loader:    chains,
		Navigator: nav,
	}, nil
}

// Close unmounts the current page and closes the store.
func (a *App) Close() error {
	a.Navigator.Close()
	return a.Store.Close()
}

// Handler builds the web dashboard handler.
func (a *App) Handler() (http.Handler, error) {
	opts := web.Options{Version: Version}
	if a.Config.Metrics.Enabled {
		opts.MetricsPath = a.Config.Metrics.Path
		opts.Metrics = promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{Registry: a.Registry})
		opts.HTTPMetrics = middleware.NewHTTPMetrics(a.Registry)
	}
	srv, err := web.NewServer(a.Log, a.Sessions, a.Guard, a.Navigator, a.Store, opts)
	if err != nil {
		return nil, err
	}
	return srv.Routes(), nil
}

// Serve runs the web dashboard until ctx ends, then shuts it down within the
// configured timeout.
func (a *App) Serve(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	sc := a.Config.Server
	srv := &http.Server{
		Addr:              sc.Addr(),
		Handler:           handler,
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.Info("starting dashboard",
			slog.String("addr", sc.Addr()),
			slog.String("version", BuildVersion()),
			slog.String("api", a.Config.API.BaseURL),
		)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
	defer cancel()
	a.Log.Info("shutting down dashboard")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}
