package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// version is set at build time via ldflags.
var version = "dev"

// Global is shared state passed to every command.
type Global struct {
	Logger *log.Logger
}

// CLI is the root command line.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging" env:"PUBSITE_VERBOSE"`

	Serve   ServeCmd   `cmd:"" default:"withargs" help:"Serve the site (default command)"`
	Check   CheckCmd   `cmd:"" help:"Load every post and report the ones that fail"`
	New     NewCmd     `cmd:"" help:"Create a new site from the starter template"`
	Version VersionCmd `cmd:"" help:"Print the pubsite version"`
}

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pubsite"),
		kong.Description("A personal website and blog server for Markdown posts."),
		kong.UsageOnError(),
	)

	logger := log.New("pubsite")
	logger.SetLevel(log.INFO)
	if cli.Verbose {
		logger.SetLevel(log.DEBUG)
	}

	err := ctx.Run(&Global{Logger: logger}, &cli)
	ctx.FatalIfErrorf(err)
}

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (v *VersionCmd) Run(_ *Global) error {
	fmt.Printf("pubsite %s\n", version)
	return nil
}
