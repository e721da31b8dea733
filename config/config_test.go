package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/zurichess/corechess/engine"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	opts := cfg.EngineOptions()
	assert.Equal(t, 0, opts.HashSizeMB)
	assert.Equal(t, 0, opts.MaxDepth)
}

func TestLoadDecodesEngineTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	body := `
[hash]
size_mb = 128

[search]
max_depth = 12
move_time_ms = 5000

[zobrist]
seed = 42

[logging]
level = "DEBUG"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Hash.SizeMB)
	assert.Equal(t, 12, cfg.Search.MaxDepth)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)

	opts := cfg.EngineOptions()
	assert.Equal(t, 128, opts.HashSizeMB)
	assert.Equal(t, 12, opts.MaxDepth)
	assert.Equal(t, 5000*1_000_000, int(cfg.MoveTime()))
}

func TestZeroValueOptionsFallBackToEngineDefaults(t *testing.T) {
	var cfg Config
	e := engine.NewEngine(nil, nil, cfg.EngineOptions())
	assert.NotNil(t, e.Position())
	assert.Equal(t, engine.DefaultOptions.MaxDepth, e.MaxDepth())
}
