package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/eringen/pubsite/scaffold"
)

// NewCmd implements the 'new' command.
type NewCmd struct {
	Dir  string `arg:"" help:"Directory to create"`
	Name string `help:"Site name (defaults to the directory name in title case)"`
}

func (n *NewCmd) Run(_ *Global) error {
	name := n.Name
	if name == "" {
		name = scaffold.ToTitle(filepath.Base(n.Dir))
	}

	fmt.Printf("Creating new pubsite: %s\n\n", n.Dir)
	created, err := scaffold.Create(n.Dir, scaffold.Data{
		SiteName: name,
		Today:    time.Now().Format("2006-01-02"),
	})
	for _, p := range created {
		fmt.Printf("  created %s\n", p)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cd %s\n", n.Dir)
	fmt.Println("  cp .env.example .env")
	fmt.Println("  pubsite serve")
	fmt.Println()
	fmt.Println("Write posts in posts/*.md and run 'pubsite check' to validate them.")
	return nil
}
