package post

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func postFile(title, date string) *fstest.MapFile {
	src := fmt.Sprintf("---\ntitle: %s\ndate: %s\ntags: [test]\nexcerpt: about %s\nreading_time: 2\n---\nBody of %s.\n", title, date, title, title)
	return &fstest.MapFile{Data: []byte(src)}
}

func TestRepositoryList_SortsByDateDescending(t *testing.T) {
	repo := NewRepository(fstest.MapFS{
		"new-year.md": postFile("New Year", "2024-01-01"),
		"midyear.md":  postFile("Midyear", "2024-06-15"),
		"eve.md":      postFile("Eve", "2023-12-31"),
	}, WithLogger(&recordingLogger{}))

	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "midyear", posts[0].Slug)
	require.Equal(t, "new-year", posts[1].Slug)
	require.Equal(t, "eve", posts[2].Slug)
	require.Equal(t, "June 15, 2024", posts[0].Date)
}

func TestRepositoryList_SameDateKeepsDirectoryOrder(t *testing.T) {
	repo := NewRepository(fstest.MapFS{
		"b.md": postFile("B", "2024-01-01"),
		"a.md": postFile("A", "2024-01-01"),
		"c.md": postFile("C", "2024-01-01"),
	}, WithLogger(&recordingLogger{}))

	posts, err := repo.List()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, []string{posts[0].Slug, posts[1].Slug, posts[2].Slug})
}

func TestRepositoryList_SkipsMalformedPosts(t *testing.T) {
	logger := &recordingLogger{}
	var skipped []string
	repo := NewRepository(fstest.MapFS{
		"good.md":         postFile("Good", "2024-01-01"),
		"no-meta.md":      {Data: []byte("# nothing\n")},
		"bad-date.md":     {Data: []byte("---\ntitle: x\ndate: yesterday\ntags: []\nexcerpt: y\nreading_time: 1\n---\n")},
		"no-excerpt.md":   {Data: []byte("---\ntitle: x\ndate: 2024-01-01\ntags: []\nreading_time: 1\n---\n")},
		"notes.txt":       {Data: []byte("ignored")},
		"drafts/wip.md":   postFile("Draft", "2025-01-01"),
		".md":             postFile("Nameless", "2024-02-02"),
		"README.markdown": {Data: []byte("ignored")},
	}, WithLogger(logger), WithSkipHook(func(name string, err error) {
		skipped = append(skipped, name)
	}))

	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "good", posts[0].Slug)
	require.ElementsMatch(t, []string{"no-meta.md", "bad-date.md", "no-excerpt.md", ".md"}, skipped)
	require.Len(t, logger.lines, 4)
}

func TestRepositoryList_NonexistentDirectoryIsEmpty(t *testing.T) {
	repo := NewRepository(os.DirFS(filepath.Join(t.TempDir(), "missing")))

	posts, err := repo.List()
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestRepositoryList_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "first.md"), postFile("First", "2024-03-01").Data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "second.md"), postFile("Second", "2024-04-01").Data, 0o644))

	repo := NewRepository(os.DirFS(dir))
	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "second", posts[0].Slug)

	// Every call reads the directory again.
	require.NoError(t, os.Remove(filepath.Join(dir, "second.md")))
	posts, err = repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestRepositoryScan_ReportsEveryFile(t *testing.T) {
	repo := NewRepository(fstest.MapFS{
		"good.md": postFile("Good", "2024-01-01"),
		"bad.md":  {Data: []byte("nope")},
	})

	results, err := repo.Scan()
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "bad.md", results[0].Name)
	require.ErrorIs(t, results[0].Err, ErrNoFrontMatter)
	require.Equal(t, "good.md", results[1].Name)
	require.NoError(t, results[1].Err)
}

func TestRepositoryCheck_MarksSkippedFiles(t *testing.T) {
	repo := NewRepository(fstest.MapFS{
		".md":     postFile("Nameless", "2024-02-02"),
		"good.md": postFile("Good", "2024-01-01"),
		"bad.md":  {Data: []byte("---\ntitle: x\n")},
	})

	results, err := repo.Check()
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, ".md", results[0].Name)
	require.ErrorIs(t, results[0].Err, ErrInvalidSlug)
	require.Equal(t, UnknownSlug, results[0].Post.Slug)
	require.ErrorIs(t, results[1].Err, ErrUnterminatedFrontMatter)
	require.NoError(t, results[2].Err)
	require.Equal(t, "good", results[2].Post.Slug)
}

func TestRepositoryGet(t *testing.T) {
	repo := NewRepository(fstest.MapFS{
		"hello.md":   postFile("Hello", "2024-01-01"),
		"unknown.md": postFile("Literally unknown", "2024-01-02"),
		"broken.md":  {Data: []byte("---\ntitle: [\n---\n")},
	})

	p, err := repo.Get("hello")
	require.NoError(t, err)
	require.Equal(t, "Hello", p.Title)
	require.Equal(t, "January 01, 2024", p.Date)

	p, err = repo.Get("unknown")
	require.NoError(t, err)
	require.Equal(t, "Literally unknown", p.Title)

	_, err = repo.Get("broken")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestRepositoryGet_NotFound(t *testing.T) {
	repo := NewRepository(fstest.MapFS{"hello.md": postFile("Hello", "2024-01-01")})

	for _, slug := range []string{"nonexistent-slug", "", "..", "../hello", "a/b", ".hidden"} {
		_, err := repo.Get(slug)
		require.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestRepositoryGet_NonexistentDirectory(t *testing.T) {
	repo := NewRepository(os.DirFS(filepath.Join(t.TempDir(), "missing")))

	_, err := repo.Get("anything")
	require.ErrorIs(t, err, ErrNotFound)
}
