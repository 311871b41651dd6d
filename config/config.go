// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsaviz/catalog"
	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/hashtable"
	"github.com/katalvlaran/dsaviz/scheduling"
	"github.com/katalvlaran/dsaviz/sudoku"
)

// Version is the only configuration version understood.
const Version = 1

// Sentinel errors.
var (
	ErrVersion   = errors.New("config: unsupported version")
	ErrLogLevel  = errors.New("config: invalid log level")
	ErrLogFormat = errors.New("config: invalid log format")
	ErrPacing    = errors.New("config: pacing cannot be negative")
	ErrRetain    = errors.New("config: server retain must be positive")
)

// Config is the root document.
type Config struct {
	Version int          `yaml:"version"`
	Engine  EngineConfig `yaml:"engine"`
	Server  ServerConfig `yaml:"server"`
	Log     LogConfig    `yaml:"log"`
	Presets Presets      `yaml:"presets"`
}

// EngineConfig holds the default run options.
type EngineConfig struct {
	PacingMs int  `yaml:"pacing_ms"`
	Manual   bool `yaml:"manual"`
}

// ServerConfig configures the WebSocket bridge.
// Retain is how long finished runs stay addressable, e.g. "10m".
type ServerConfig struct {
	Addr   string        `yaml:"addr"`
	Retain time.Duration `yaml:"retain"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HashPreset is the default hash table shape.
type HashPreset struct {
	TableSize int    `yaml:"table_size"`
	Policy    string `yaml:"policy"`
}

// ArrayPreset is the default random array shape.
type ArrayPreset struct {
	Size int `yaml:"size"`
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
}

// Presets are the catalog fallbacks.
type Presets struct {
	Words  []string            `yaml:"words"`
	Jobs   []scheduling.Job    `yaml:"jobs"`
	Sudoku map[string][][]int  `yaml:"sudoku"`
	Graph  catalog.RandomGraph `yaml:"graph"`
	Hash   HashPreset          `yaml:"hash"`
	Array  ArrayPreset         `yaml:"array"`
	Queens int                 `yaml:"queens"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := catalog.DefaultPresets()

	return &Config{
		Version: Version,
		Engine:  EngineConfig{PacingMs: 300},
		Server:  ServerConfig{Addr: ":8080", Retain: 10 * time.Minute},
		Log:     LogConfig{Level: "info", Format: "text"},
		Presets: Presets{
			Words:  p.Words,
			Jobs:   p.Jobs,
			Graph:  p.Graph,
			Hash:   HashPreset{TableSize: p.HashSize, Policy: p.HashPolicy},
			Array:  ArrayPreset{Size: p.ArraySize, Min: p.ArrayMin, Max: p.ArrayMax},
			Queens: p.QueensN,
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("%w: %d", ErrVersion, c.Version)
	}
	if c.Engine.PacingMs < 0 {
		return fmt.Errorf("%w: %d", ErrPacing, c.Engine.PacingMs)
	}
	if c.Server.Retain <= 0 {
		return fmt.Errorf("%w: %s", ErrRetain, c.Server.Retain)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrLogFormat, c.Log.Format)
	}
	if _, err := hashtable.ParsePolicy(c.Presets.Hash.Policy); err != nil {
		return err
	}
	_, err := c.Presets.Catalog()

	return err
}

// Options converts the engine section to run options.
func (e EngineConfig) Options() []engine.Option {
	opts := []engine.Option{engine.WithPacingMs(e.PacingMs)}
	if e.Manual {
		opts = append(opts, engine.WithManual())
	}

	return opts
}

func (l LogConfig) level() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrLogLevel, l.Level)
	}
}

// Logger builds a logger writing to w with the configured level and format.
func (l LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(l.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrLogFormat, l.Format)
	}

	return slog.New(h), nil
}

// Catalog converts the presets for catalog.New. Sudoku grids are checked.
func (p Presets) Catalog() (catalog.Presets, error) {
	out := catalog.Presets{
		ArraySize:  p.Array.Size,
		ArrayMin:   p.Array.Min,
		ArrayMax:   p.Array.Max,
		Words:      p.Words,
		Jobs:       p.Jobs,
		Graph:      p.Graph,
		HashSize:   p.Hash.TableSize,
		HashPolicy: p.Hash.Policy,
		QueensN:    p.Queens,
	}
	if len(p.Sudoku) > 0 {
		out.Sudoku = make(map[string]sudoku.Grid, len(p.Sudoku))
		for name, rows := range p.Sudoku {
			g, err := sudoku.FromRows(rows)
			if err != nil {
				return catalog.Presets{}, fmt.Errorf("sudoku preset %q: %w", name, err)
			}
			out.Sudoku[strings.ToLower(name)] = g
		}
	}

	return out, nil
}
