// Package config loads runtime configuration for the UOCFlix CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the JSON film catalog seed ("" uses the built-in one)
//	-l string   log level: debug, info, warn or error
//	-p string   REPL prompt
//
// # JSON schema
//
//	{
//	  "catalog_file": "films.json",
//	  "log_level": "debug",
//	  "prompt": "uocflix"
//	}
//
// Missing JSON keys keep the values set by earlier sources.
package config
