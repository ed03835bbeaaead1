package post

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/labstack/gommon/log"
)

// Ext is the file extension of post sources.
const Ext = ".md"

var (
	// ErrNotFound is returned by Get when no post exists for a slug.
	ErrNotFound = errors.New("post not found")

	// ErrInvalidSlug marks files whose name cannot produce a usable slug.
	ErrInvalidSlug = errors.New("cannot derive slug from file name")
)

// Logger is the subset of echo.Logger and gommon's log.Logger used here.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Result is the outcome of loading one file during a Scan.
type Result struct {
	Name string
	Post Post
	Err  error
}

// Repository reads posts from the root of a file system on every call.
type Repository struct {
	fsys   fs.FS
	logger Logger
	onSkip func(name string, err error)
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger that reports skipped files.
func WithLogger(l Logger) Option {
	return func(r *Repository) {
		r.logger = l
	}
}

// WithSkipHook registers fn to be called for every file List leaves out.
func WithSkipHook(fn func(name string, err error)) Option {
	return func(r *Repository) {
		r.onSkip = fn
	}
}

// NewRepository returns a Repository over the posts stored at the root of fsys.
func NewRepository(fsys fs.FS, opts ...Option) *Repository {
	r := &Repository{
		fsys:   fsys,
		logger: log.New("post"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scan loads every post file and reports each outcome in directory order.
// A missing directory yields no results and no error.
func (r *Repository) Scan() ([]Result, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read posts directory: %w", err)
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != Ext {
			continue
		}
		p, err := Load(r.fsys, e.Name())
		results = append(results, Result{Name: e.Name(), Post: p, Err: err})
	}
	return results, nil
}

// Check scans the directory and sets Err on every result that List would
// leave out, including files whose name yields no usable slug.
func (r *Repository) Check() ([]Result, error) {
	results, err := r.Scan()
	if err != nil {
		return nil, err
	}

	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if _, ok := slugFromName(results[i].Name); !ok {
			results[i].Err = ErrInvalidSlug
		}
	}
	return results, nil
}

// List returns every loadable post, most recent first. Files that fail to
// load, or whose slug is unusable, are logged and left out.
func (r *Repository) List() ([]Post, error) {
	results, err := r.Check()
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			r.skip(res.Name, res.Err)
			continue
		}
		posts = append(posts, res.Post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].published.After(posts[j].published)
	})
	return posts, nil
}

// Get loads the single post stored as slug + Ext. It never scans the
// directory.
func (r *Repository) Get(slug string) (Post, error) {
	if !ValidSlug(slug) {
		return Post{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	p, err := Load(r.fsys, slug+Ext)
	if errors.Is(err, fs.ErrNotExist) {
		return Post{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	if err != nil {
		return Post{}, err
	}
	return p, nil
}

func (r *Repository) skip(name string, err error) {
	r.logger.Warnf("skipping post %s: %v", name, err)
	if r.onSkip != nil {
		r.onSkip(name, err)
	}
}
