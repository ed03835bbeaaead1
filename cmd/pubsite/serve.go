package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/eringen/pubsite"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr        string `help:"Listen address" default:"127.0.0.1:3000" env:"PUBSITE_ADDR"`
	URL         string `help:"Canonical site URL (defaults to http://ADDR)" env:"PUBSITE_URL"`
	Name        string `help:"Site name" default:"Blog" env:"PUBSITE_NAME"`
	Description string `help:"Site description for meta tags" env:"PUBSITE_DESCRIPTION"`
	Author      string `help:"Author name" env:"PUBSITE_AUTHOR"`
	MetricsAddr string `help:"Serve Prometheus metrics on this address" env:"PUBSITE_METRICS_ADDR"`

	PostsDir     string `help:"Markdown posts directory" default:"posts" env:"PUBSITE_POSTS_DIR"`
	TemplatesDir string `help:"HTML templates directory" default:"templates" env:"PUBSITE_TEMPLATES_DIR"`
	StaticDir    string `help:"Static assets directory" default:"static" env:"PUBSITE_STATIC_DIR"`
}

func (s *ServeCmd) config() pubsite.SiteConfig {
	return pubsite.SiteConfig{
		Name:         s.Name,
		URL:          s.URL,
		Description:  s.Description,
		Author:       s.Author,
		Addr:         s.Addr,
		MetricsAddr:  s.MetricsAddr,
		PostsDir:     s.PostsDir,
		TemplatesDir: s.TemplatesDir,
		StaticDir:    s.StaticDir,
	}
}

func (s *ServeCmd) Run(g *Global) error {
	app := pubsite.New(s.config())
	app.Echo.Logger.SetLevel(g.Logger.Level())
	if err := app.Setup(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- app.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		g.Logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
