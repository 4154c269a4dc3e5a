package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/uocflix/internal/flagx"
)

// JsonConfig is the DTO used for JSON unmarshalling. Pointer fields tell
// absent keys apart from empty values.
type JsonConfig struct {
	CatalogFile *string `json:"catalog_file"`
	LogLevel    *string `json:"log_level"`
	Prompt      *string `json:"prompt"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Nothing happens when no file is given; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.CatalogFile != nil {
		cfg.CatalogFile = *c.CatalogFile
	}
	if c.LogLevel != nil {
		cfg.LogLevel = *c.LogLevel
	}
	if c.Prompt != nil {
		cfg.Prompt = *c.Prompt
	}
}
