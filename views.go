package pubsite

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// rawHTML writes a fixed markup fragment. Interpolated values must already be
// escaped with templ.EscapeString.
func rawHTML(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// PostNotFound is the inline body for a slug that does not resolve to a
// loadable post.
func PostNotFound(slug string) templ.Component {
	return rawHTML("<h1>Post not found</h1><p>The post '" + templ.EscapeString(slug) + "' could not be found.</p>")
}

// PostRenderError is the inline body for a post whose template failed.
func PostRenderError(err error) templ.Component {
	return rawHTML("<h1>Error rendering post</h1><p>" + templ.EscapeString(err.Error()) + "</p>")
}

// NotFound is the built-in page for unmatched routes.
func NotFound() templ.Component {
	return rawHTML(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Not Found</title></head>` +
		`<body><h1>404 Not Found</h1><p>The page you requested does not exist.</p><p><a href="/">Home</a></p></body></html>`)
}

// ServerError is the built-in page for unrecoverable request errors.
func ServerError() templ.Component {
	return rawHTML(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Server Error</title></head>` +
		`<body><h1>500 Server Error</h1><p>Something went wrong while rendering this page.</p><p><a href="/">Home</a></p></body></html>`)
}
