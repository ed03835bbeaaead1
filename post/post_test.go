package post

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const validPost = `---
title: Hello World
date: 2024-06-15
subtitle: First words
tags:
  - intro
  - meta
excerpt: The very first post.
reading_time: 3
---
# Hello

Some ~~old~~ new text.

| Name | Value |
|------|-------|
| a    | 1     |
`

func TestParse_ValidPost(t *testing.T) {
	p, err := Parse("hello-world.md", []byte(validPost))
	require.NoError(t, err)

	require.Equal(t, "hello-world", p.Slug)
	require.Equal(t, "Hello World", p.Title)
	require.Equal(t, "First words", p.Subtitle)
	require.Equal(t, "The very first post.", p.Excerpt)
	require.Equal(t, []string{"intro", "meta"}, p.Tags)
	require.Equal(t, uint32(3), p.ReadingTime)
	require.Equal(t, "June 15, 2024", p.Date)
	require.Equal(t, 2024, p.PublishedAt().Year())
}

func TestParse_RendersStrikethroughAndTables(t *testing.T) {
	p, err := Parse("hello-world.md", []byte(validPost))
	require.NoError(t, err)

	content := string(p.Content)
	require.Contains(t, content, "<h1>Hello</h1>")
	require.Contains(t, content, "<del>old</del>")
	require.Contains(t, content, "<table>")
	require.Contains(t, content, "<th>Name</th>")
	require.Contains(t, content, "<td>a</td>")
}

func TestParse_DateUsesLongFormWithPaddedDay(t *testing.T) {
	src := "---\ntitle: a\ndate: 2023-03-05\ntags: []\nexcerpt: b\nreading_time: 1\n---\nbody\n"
	p, err := Parse("a.md", []byte(src))
	require.NoError(t, err)
	require.Equal(t, "March 05, 2023", p.Date)
}

func TestParse_OptionalSubtitleDefaultsToEmpty(t *testing.T) {
	src := "---\ntitle: a\ndate: 2023-03-05\ntags: []\nexcerpt: b\nreading_time: 1\n---\n"
	p, err := Parse("a.md", []byte(src))
	require.NoError(t, err)
	require.Empty(t, p.Subtitle)
	require.Empty(t, p.Content)
}

func TestParse_WithoutFrontMatterFails(t *testing.T) {
	_, err := Parse("plain.md", []byte("# No metadata here\n"))
	require.ErrorIs(t, err, ErrNoFrontMatter)
	require.Contains(t, err.Error(), "plain.md")
}

func TestParse_MissingRequiredFieldFails(t *testing.T) {
	src := "---\ntitle: a\ndate: 2023-03-05\ntags: []\nreading_time: 1\n---\nbody\n"
	_, err := Parse("a.md", []byte(src))
	require.ErrorIs(t, err, ErrMissingField)
	require.Contains(t, err.Error(), "excerpt")
}

func TestParse_WrongTypedFieldsFail(t *testing.T) {
	cases := map[string]string{
		"numeric title":   "---\ntitle: 123\ndate: 2023-03-05\ntags: []\nexcerpt: b\nreading_time: 1\n---\nbody\n",
		"fractional time": "---\ntitle: a\ndate: 2023-03-05\ntags: []\nexcerpt: b\nreading_time: 2.9\n---\nbody\n",
		"non-string tags": "---\ntitle: a\ndate: 2023-03-05\ntags: [1, true]\nexcerpt: b\nreading_time: 1\n---\nbody\n",
		"boolean excerpt": "---\ntitle: a\ndate: 2023-03-05\ntags: []\nexcerpt: true\nreading_time: 1\n---\nbody\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := Parse("f.md", []byte(src))
			require.Error(t, err)
			require.Contains(t, err.Error(), "f.md: front matter")
			require.Equal(t, Post{}, p)
		})
	}
}

func TestLoad_ReadsFromFileSystem(t *testing.T) {
	fsys := fstest.MapFS{"hello-world.md": {Data: []byte(validPost)}}

	p, err := Load(fsys, "hello-world.md")
	require.NoError(t, err)
	require.Equal(t, "hello-world", p.Slug)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.md")
	require.Error(t, err)
}

func TestSlugFromName(t *testing.T) {
	cases := map[string]string{
		"hello-world.md":       "hello-world",
		"posts/nested/deep.md": "deep",
		"no-extension":         "no-extension",
		"two.dots.md":          "two.dots",
		".md":                  UnknownSlug,
		"":                     UnknownSlug,
	}
	for name, want := range cases {
		require.Equal(t, want, SlugFromName(name), "SlugFromName(%q)", name)
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"hello-world", "2024-recap", "unknown", "two.dots"}
	for _, s := range valid {
		require.True(t, ValidSlug(s), s)
	}
	invalid := []string{"", ".", "..", ".hidden", "a/b", `a\b`, "../etc/passwd"}
	for _, s := range invalid {
		require.False(t, ValidSlug(s), s)
	}
}
