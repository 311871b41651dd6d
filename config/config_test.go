package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/config"
	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/scheduling"
)

func TestParse_EmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
version: 1
engine:
  pacing_ms: 0
server:
  addr: "127.0.0.1:9000"
  retain: 90s
presets:
  words: [go, gopher]
  jobs:
    - {id: 1, name: Build, duration: 100, deadline: 500, priority: 1}
  hash: {table_size: 7, policy: linear}
  graph: {nodes: 5, seed: 42}
`))
	require.NoError(t, err)

	assert.Zero(t, cfg.Engine.PacingMs, "explicit zero wins over the default")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 90*time.Second, cfg.Server.Retain)
	assert.Equal(t, "info", cfg.Log.Level, "untouched sections keep defaults")

	want := []scheduling.Job{{ID: 1, Name: "Build", Duration: 100, Deadline: 500, Priority: 1}}
	if diff := cmp.Diff(want, cfg.Presets.Jobs); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}

	p, err := cfg.Presets.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "gopher"}, p.Words)
	assert.Equal(t, 7, p.HashSize)
	assert.Equal(t, "linear", p.HashPolicy)
	assert.Equal(t, 5, p.Graph.Nodes)
	assert.Equal(t, int64(42), p.Graph.Seed)
	assert.Equal(t, 800.0, p.Graph.Width, "partial graph keeps default canvas")
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"version":    {"version: 2", config.ErrVersion},
		"level":      {"log: {level: loud}", config.ErrLogLevel},
		"format":     {"log: {format: xml}", config.ErrLogFormat},
		"pacing":     {"engine: {pacing_ms: -1}", config.ErrPacing},
		"retain":     {"server: {retain: 0s}", config.ErrRetain},
		"unknownKey": {"engine: {speed: 3}", nil},
		"sudoku":     {"presets: {sudoku: {tiny: [[1, 2]]}}", engine.ErrInvalidInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsaviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nengine: {manual: true}\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	o, err := engine.Resolve(cfg.Engine.Options()...)
	require.NoError(t, err)
	assert.True(t, o.Manual)
	assert.Equal(t, 300*time.Millisecond, o.Pacing)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	l, err := config.LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":1`)

	_, err = config.LogConfig{Level: "trace"}.Logger(&buf)
	assert.ErrorIs(t, err, config.ErrLogLevel)
}
