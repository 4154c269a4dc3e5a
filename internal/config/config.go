package config

import "os"

// Config holds runtime settings for the UOCFlix CLI.
//
// Fields:
//   - CatalogFile: JSON film catalog seed; empty means the embedded default.
//   - LogLevel: minimum level written to the log (stderr).
//   - Prompt: text shown before each REPL command.
type Config struct {
	CatalogFile string
	LogLevel    string
	Prompt      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogFile = ""
	c.LogLevel = "info"
	c.Prompt = "uocflix"
}

// LoadConfig constructs a Config from the process arguments: defaults, then
// JSON (if present), then command-line flags. Invalid input panics.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
