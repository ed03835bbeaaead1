package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/eringen/pubsite/post"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	PostsDir string `help:"Markdown posts directory" default:"posts" env:"PUBSITE_POSTS_DIR"`
}

func (c *CheckCmd) Run(_ *Global) error {
	return runCheck(os.Stdout, os.DirFS(c.PostsDir))
}

// runCheck loads every post in fsys, prints one line per file and fails
// when any post would be left out of the index.
func runCheck(w io.Writer, fsys fs.FS) error {
	results, err := post.NewRepository(fsys).Check()
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "ok    %s  %s  %q\n", r.Name, r.Post.Date, r.Post.Title)
	}

	fmt.Fprintf(w, "\n%d posts, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d posts failed to load", failed, len(results))
	}
	return nil
}
