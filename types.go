package pubsite

import "github.com/eringen/pubsite/post"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// PageData is passed to every template.
type PageData struct {
	Site SiteConfig
	Meta PageMeta
}

// IndexData is passed to index.html.
type IndexData struct {
	PageData
	Posts []post.Post
}

// PostData is passed to post.html.
type PostData struct {
	PageData
	Post post.Post
}

// ErrorData is passed to notfound.html and error.html.
type ErrorData struct {
	PageData
	Message string
}
