// Package pubsite is a personal website and blog server built with Go and
// Echo. It renders a home page, an index of Markdown posts and the posts
// themselves through HTML templates, and serves static assets.
//
// Posts and templates are plain files. Posts are read from disk on every
// request; templates are parsed once at startup.
package pubsite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/pubsite/post"
)

// Posts is the read side of the post store used by the handlers.
type Posts interface {
	List() ([]post.Post, error)
	Get(slug string) (post.Post, error)
}

// App is the central pubsite application. It wires together the post
// repository, templates, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Posts  Posts
	Views  *Templates

	metrics     *metrics
	metricsEcho *echo.Echo
	ready       bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		metrics: newMetrics(),
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(log.INFO)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup loads the templates and registers middleware and routes. Start
// calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}

	if a.Views == nil {
		views, err := LoadTemplates(os.DirFS(a.Config.TemplatesDir))
		if err != nil {
			return fmt.Errorf("pubsite: %w", err)
		}
		a.Views = views
	}

	if a.Posts == nil {
		a.Posts = post.NewRepository(os.DirFS(a.Config.PostsDir),
			post.WithLogger(a.Echo.Logger),
			post.WithSkipHook(a.metrics.postSkipped),
		)
	}

	a.setupMiddleware()
	a.setupRoutes()
	if a.Config.MetricsAddr != "" {
		a.setupMetrics()
	}
	a.ready = true
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/static", a.Config.StaticDir)

	e.GET("/", a.handleHome)
	e.GET("/posts", a.handleIndex)
	e.GET("/posts/:slug", a.handlePost)
}

func (a *App) setupMetrics() {
	m := echo.New()
	m.HideBanner = true
	m.HidePort = true
	m.GET("/metrics", a.metrics.handler())
	a.metricsEcho = m
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}

	if a.metricsEcho != nil {
		go func() {
			a.Echo.Logger.Infof("Metrics at http://%s/metrics", a.Config.MetricsAddr)
			if err := a.metricsEcho.Start(a.Config.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.Echo.Logger.Errorf("metrics server: %v", err)
			}
		}()
	}

	a.Echo.Logger.Infof("Server running at %s", a.Config.URL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the site and metrics servers, waiting for in-flight
// requests until ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.metricsEcho != nil {
		errs = append(errs, a.metricsEcho.Shutdown(ctx))
	}
	errs = append(errs, a.Echo.Shutdown(ctx))
	return errors.Join(errs...)
}
