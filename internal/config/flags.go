package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/uocflix/internal/flagx"
)

// parseFlags overlays cfg with -f, -l and -p from args. Other flags are
// filtered out first so they do not collide with -c/-config.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-f", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.CatalogFile, "f", cfg.CatalogFile, "JSON film catalog file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Prompt, "p", cfg.Prompt, "REPL prompt")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
