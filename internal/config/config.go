// Package config provides YAML-based configuration loading, validation and
// speed presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Size limits for the board.
const (
	MinBoardSize  = blockfall.ShapeSize
	MaxBoardWidth = 200
)

// Config contains all configuration for a blockfall game.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Pieces PiecesConfig `yaml:"pieces"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
}

// BoardConfig defines the play field dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the game loop cadence.
type TimingConfig struct {
	TickMS     int `yaml:"tick_ms"`
	SpawnEvery int `yaml:"spawn_every"` // ticks between spawns
	MaxTicks   int `yaml:"max_ticks"`   // 0 = run until quit
}

// InputConfig defines key bindings and the listener's poll timeout.
type InputConfig struct {
	PollMS int    `yaml:"poll_ms"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Quit   string `yaml:"quit"`
}

// PiecesConfig defines the factory's share of the draw per piece kind.
type PiecesConfig struct {
	Weights map[string]int `yaml:"weights"`
}

// GlyphConfig defines the two-column strings drawn for each cell class.
type GlyphConfig struct {
	Empty  string `yaml:"empty"`
	Filled string `yaml:"filled"`
	Piece  string `yaml:"piece"`
}

// Validate checks the configuration and returns the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < MinBoardSize || c.Board.Height < MinBoardSize:
		return invalid("board must be at least %dx%d, got %dx%d",
			MinBoardSize, MinBoardSize, c.Board.Width, c.Board.Height)
	case c.Board.Width > MaxBoardWidth:
		return invalid("board width %d exceeds %d", c.Board.Width, MaxBoardWidth)
	case c.Timing.TickMS <= 0:
		return invalid("timing.tick_ms must be positive")
	case c.Timing.SpawnEvery <= 0:
		return invalid("timing.spawn_every must be positive")
	case c.Timing.MaxTicks < 0:
		return invalid("timing.max_ticks must not be negative")
	case c.Input.PollMS <= 0:
		return invalid("input.poll_ms must be positive")
	}

	if _, err := c.KeyMap(); err != nil {
		return err
	}
	if _, err := c.Weights(); err != nil {
		return err
	}

	for name, g := range map[string]string{
		"empty":  c.Glyphs.Empty,
		"filled": c.Glyphs.Filled,
		"piece":  c.Glyphs.Piece,
	} {
		if utf8.RuneCountInString(g) != 2 || lipgloss.Width(g) != 2 {
			return invalid("glyphs.%s must be two single-column characters, got %q", name, g)
		}
	}
	return nil
}

// KeyMap resolves the input bindings.
func (c Config) KeyMap() (core.KeyMap, error) {
	var km core.KeyMap
	for _, b := range []struct {
		name string
		key  string
		dst  *rune
	}{
		{"left", c.Input.Left, &km.Left},
		{"right", c.Input.Right, &km.Right},
		{"quit", c.Input.Quit, &km.Quit},
	} {
		if utf8.RuneCountInString(b.key) != 1 {
			return km, invalid("input.%s must be a single character, got %q", b.name, b.key)
		}
		*b.dst, _ = utf8.DecodeRuneInString(b.key)
	}
	if err := km.Validate(); err != nil {
		return km, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return km, nil
}

// Weights resolves the per-kind factory shares.
func (c Config) Weights() (blockfall.Weights, error) {
	w := make(blockfall.Weights, len(c.Pieces.Weights))
	for name, share := range c.Pieces.Weights {
		k, err := blockfall.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: pieces.weights: %w", ErrInvalid, err)
		}
		w[k] = share
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: pieces.weights: %w", ErrInvalid, err)
	}
	return w, nil
}

// GlyphSet returns the glyphs for frame rendering.
func (c Config) GlyphSet() blockfall.GlyphSet {
	return blockfall.GlyphSet{
		Empty:  c.Glyphs.Empty,
		Filled: c.Glyphs.Filled,
		Piece:  c.Glyphs.Piece,
	}
}

// Runtime converts the configuration into the engine's runtime parameters.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		TickInterval: time.Duration(c.Timing.TickMS) * time.Millisecond,
		SpawnEvery:   c.Timing.SpawnEvery,
		MaxTicks:     c.Timing.MaxTicks,
		PollInterval: time.Duration(c.Input.PollMS) * time.Millisecond,
		Seed:         seed,
	}
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
