package pubsite

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/a-h/templ"
)

const (
	homePage     = "home.html"
	indexPage    = "index.html"
	postPage     = "post.html"
	notFoundPage = "notfound.html"
	errorPage    = "error.html"

	partialsGlob = "partials/*.html"
)

var requiredPages = []string{homePage, indexPage, postPage}

var optionalPages = []string{notFoundPage, errorPage}

var funcMap = template.FuncMap{
	"joinTags":          JoinTags,
	"postURL":           PostURL,
	"websiteJsonLD":     WebsiteJsonLD,
	"blogPostingJsonLD": BlogPostingJsonLD,
}

// Templates is the parsed page set. It is never modified after
// LoadTemplates returns and is safe for concurrent use.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses the page templates found at the root of fsys. Every
// page is parsed on its own copy of the shared partials so pages may define
// blocks with the same names.
func LoadTemplates(fsys fs.FS) (*Templates, error) {
	base := template.New("pubsite").Funcs(funcMap)
	partials, err := fs.Glob(fsys, partialsGlob)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if len(partials) > 0 {
		if base, err = base.ParseFS(fsys, partialsGlob); err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
	}

	t := &Templates{pages: make(map[string]*template.Template)}
	for _, name := range requiredPages {
		if err := t.parsePage(fsys, base, name); err != nil {
			return nil, err
		}
	}
	for _, name := range optionalPages {
		err := t.parsePage(fsys, base, name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return t, nil
}

func (t *Templates) parsePage(fsys fs.FS, base *template.Template, name string) error {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	set, err := base.Clone()
	if err != nil {
		return fmt.Errorf("load templates: %s: %w", name, err)
	}
	page, err := set.New(name).Parse(string(src))
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	t.pages[name] = page
	return nil
}

// Has reports whether the named page was loaded.
func (t *Templates) Has(name string) bool {
	_, ok := t.pages[name]
	return ok
}

// Home renders home.html.
func (t *Templates) Home(data PageData) templ.Component {
	return t.page(homePage, data)
}

// Index renders index.html.
func (t *Templates) Index(data IndexData) templ.Component {
	return t.page(indexPage, data)
}

// Post renders post.html.
func (t *Templates) Post(data PostData) templ.Component {
	return t.page(postPage, data)
}

// NotFound renders notfound.html, or a built-in page when the site has none.
func (t *Templates) NotFound(data ErrorData) templ.Component {
	if !t.Has(notFoundPage) {
		return NotFound()
	}
	return t.page(notFoundPage, data)
}

// ServerError renders error.html, or a built-in page when the site has none.
func (t *Templates) ServerError(data ErrorData) templ.Component {
	if !t.Has(errorPage) {
		return ServerError()
	}
	return t.page(errorPage, data)
}

func (t *Templates) page(name string, data any) templ.Component {
	p, ok := t.pages[name]
	if !ok {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %s is not loaded", name)
		})
	}
	return templ.FromGoHTML(p, data)
}
