// Package config reads the optional wiregen TOML file.
//
//	output = "records_wire.go"
//	types = ["Header", "Page"]
//	atomic = true
//	load = false
//	log_level = "debug"
//
// Every key is optional. Keys the file does not define keep their defaults.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is looked up in the package directory when no -config is given
const DefaultFile = "wiregen.toml"

// Config is the resolved generator configuration
type Config struct {
	Output   string   // output file, relative to the package directory
	Types    []string // restrict generation to these types; empty means all
	Atomic   bool     // default for records whose annotation does not say
	Load     bool     // resolve cross-package types through go/packages
	LogLevel zapcore.Level
}

func Default() Config {
	return Config{
		Load:     true,
		LogLevel: zapcore.InfoLevel,
	}
}

type fileConfig struct {
	Output   string   `toml:"output"`
	Types    []string `toml:"types"`
	Atomic   bool     `toml:"atomic"`
	Load     bool     `toml:"load"`
	LogLevel string   `toml:"log_level"`
}

// Load reads path over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load wiregen config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load wiregen config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}

	if meta.IsDefined("types") {
		cfg.Types = normalizeTypes(raw.Types)
	}

	if meta.IsDefined("atomic") {
		cfg.Atomic = raw.Atomic
	}

	if meta.IsDefined("load") {
		cfg.Load = raw.Load
	}

	if meta.IsDefined("log_level") {
		level, err := zapcore.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ParseTypes splits a comma-separated -types value
func ParseTypes(s string) []string {
	return normalizeTypes(strings.Split(s, ","))
}

// Wants reports whether typeName is selected for generation
func (c Config) Wants(typeName string) bool {
	if len(c.Types) == 0 {
		return true
	}
	for _, t := range c.Types {
		if t == typeName {
			return true
		}
	}
	return false
}

func normalizeTypes(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
