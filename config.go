package pubsite

import "strings"

// SiteConfig holds all configuration for a pubsite server.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://127.0.0.1:3000")
	Description string // Site description for meta tags
	Author      string // Author name shown in templates

	Addr        string // Listen address (default "127.0.0.1:3000")
	MetricsAddr string // Prometheus listen address; empty disables metrics

	PostsDir     string // Markdown sources (default "posts")
	TemplatesDir string // HTML templates (default "templates")
	StaticDir    string // Files served under /static (default "static")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.Addr == "" {
		c.Addr = "127.0.0.1:3000"
	}
	if c.URL == "" {
		c.URL = "http://" + c.Addr
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithTemplates uses an already loaded template set instead of reading
// TemplatesDir at startup.
func WithTemplates(t *Templates) Option {
	return func(a *App) {
		a.Views = t
	}
}

// WithRepository replaces the post repository built from PostsDir.
func WithRepository(r Posts) Option {
	return func(a *App) {
		a.Posts = r
	}
}
