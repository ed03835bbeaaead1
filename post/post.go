// Package post loads blog posts from Markdown files with YAML front matter.
package post

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/eringen/pubsite/markdown"
)

// UnknownSlug is assigned when no slug can be derived from a file name.
const UnknownSlug = "unknown"

// DisplayLayout is the long form used for Post.Date.
const DisplayLayout = "January 02, 2006"

// Post is one rendered Markdown file. Values are built fresh on every load
// and never modified afterwards.
type Post struct {
	Slug        string
	Title       string
	Subtitle    string
	Excerpt     string
	Tags        []string
	ReadingTime uint32
	Date        string        // e.g. "June 15, 2024"
	Content     template.HTML // rendered body, trusted

	published time.Time
}

// PublishedAt returns the front matter date at midnight UTC.
func (p Post) PublishedAt() time.Time {
	return p.published
}

// Load reads and parses the named file from fsys.
func Load(fsys fs.FS, name string) (Post, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Post{}, fmt.Errorf("load post: %w", err)
	}
	return Parse(name, src)
}

// Parse builds a Post from the raw contents of the file called name.
func Parse(name string, src []byte) (Post, error) {
	fmb, body, err := SplitFrontMatter(src)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}
	fm, err := parseFrontMatter(fmb)
	if err != nil {
		return Post{}, fmt.Errorf("%s: front matter: %w", name, err)
	}
	content, err := markdown.Render(body)
	if err != nil {
		return Post{}, fmt.Errorf("%s: render markdown: %w", name, err)
	}

	p := Post{
		Slug:        SlugFromName(name),
		Title:       string(*fm.Title),
		Excerpt:     string(*fm.Excerpt),
		Tags:        []string(*fm.Tags),
		ReadingTime: uint32(*fm.ReadingTime),
		Date:        fm.Date.Format(DisplayLayout),
		Content:     content,
		published:   fm.Date.Time,
	}
	if fm.Subtitle != nil {
		p.Subtitle = string(*fm.Subtitle)
	}
	return p, nil
}

// SlugFromName returns the base name of name without its extension, or
// UnknownSlug when that leaves nothing.
func SlugFromName(name string) string {
	slug, ok := slugFromName(name)
	if !ok {
		return UnknownSlug
	}
	return slug
}

func slugFromName(name string) (string, bool) {
	base := path.Base(name)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		return "", false
	}
	return stem, true
}

// ValidSlug reports whether slug can name a file directly inside the posts
// directory.
func ValidSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, ".") || strings.ContainsAny(slug, `/\`) {
		return false
	}
	return fs.ValidPath(slug + Ext)
}
