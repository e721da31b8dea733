// Package config loads engine configuration from an engine.toml file.
//
// Grounded on SPEC_FULL.md §4.9's Configuration subsection: hash table
// size, default search depth/time budget, the Zobrist PRNG seed, and
// logging level, decoded with github.com/BurntSushi/toml the way the
// reference pack's TOML-configured services load settings (a single
// struct decoded in one call, zero value falling back to the program's
// own defaults rather than requiring a file to exist).
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"bitbucket.org/zurichess/corechess/engine"
)

// Config is the on-disk shape of engine.toml. Every field is optional;
// a zero-value Config resolves to the same defaults engine.NewEngine
// uses on its own.
type Config struct {
	Hash struct {
		SizeMB int `toml:"size_mb"`
	} `toml:"hash"`

	Search struct {
		MaxDepth   int `toml:"max_depth"`
		MoveTimeMS int `toml:"move_time_ms"`
	} `toml:"search"`

	Zobrist struct {
		Seed int64 `toml:"seed"`
	} `toml:"zobrist"`

	Logging struct {
		Level string `toml:"level"`
	} `toml:"logging"`
}

// Load reads and decodes path. A missing file is not an error: Load
// returns a zero-value Config, which resolves to engine defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// EngineOptions translates the loaded configuration into engine.Options,
// leaving fields at their zero value where the config left them unset so
// engine.NewEngine's own defaulting takes over.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		HashSizeMB: c.Hash.SizeMB,
		MaxDepth:   c.Search.MaxDepth,
	}
}

// MoveTime returns the configured per-move time budget, or zero if
// unset.
func (c Config) MoveTime() time.Duration {
	if c.Search.MoveTimeMS <= 0 {
		return 0
	}
	return time.Duration(c.Search.MoveTimeMS) * time.Millisecond
}

// ApplyZobristSeed reseeds the engine's Zobrist constant tables if the
// config named a seed. Must be called before any Position is built.
func (c Config) ApplyZobristSeed() {
	if c.Zobrist.Seed != 0 {
		engine.SeedZobrist(c.Zobrist.Seed)
	}
}
