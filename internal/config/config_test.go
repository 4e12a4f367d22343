package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow board", func(c *Config) { c.Board.Width = 3 }},
		{"short board", func(c *Config) { c.Board.Height = 2 }},
		{"wide board", func(c *Config) { c.Board.Width = MaxBoardWidth + 1 }},
		{"zero tick", func(c *Config) { c.Timing.TickMS = 0 }},
		{"zero spawn interval", func(c *Config) { c.Timing.SpawnEvery = 0 }},
		{"negative max ticks", func(c *Config) { c.Timing.MaxTicks = -1 }},
		{"zero poll", func(c *Config) { c.Input.PollMS = 0 }},
		{"long key", func(c *Config) { c.Input.Left = "left" }},
		{"empty key", func(c *Config) { c.Input.Quit = "" }},
		{"colliding keys", func(c *Config) { c.Input.Right = "a" }},
		{"unknown kind", func(c *Config) { c.Pieces.Weights["zig"] = 1 }},
		{"zero weight", func(c *Config) { c.Pieces.Weights["tee"] = 0; c.Pieces.Weights["block"] += 20 }},
		{"weights sum", func(c *Config) { c.Pieces.Weights["bar"] = 10 }},
		{"narrow glyph", func(c *Config) { c.Glyphs.Piece = "#" }},
		{"wide glyph", func(c *Config) { c.Glyphs.Filled = "###" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
		})
	}
}

func TestValidateAcceptsMinimumBoard(t *testing.T) {
	cfg := Default()
	cfg.Board.Width, cfg.Board.Height = MinBoardSize, MinBoardSize
	cfg.Timing.MaxTicks = 0
	cfg.Glyphs.Piece = "@@"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKeyMap(t *testing.T) {
	cfg := Default()
	cfg.Input.Left = "j"
	cfg.Input.Right = "l"

	km, err := cfg.KeyMap()
	if err != nil {
		t.Fatalf("KeyMap: %v", err)
	}
	if km.Left != 'j' || km.Right != 'l' || km.Quit != 'q' {
		t.Errorf("KeyMap = %+v", km)
	}
}

func TestWeights(t *testing.T) {
	w, err := Default().Weights()
	if err != nil {
		t.Fatalf("Weights: %v", err)
	}
	if !reflect.DeepEqual(w, blockfall.DefaultWeights()) {
		t.Errorf("Weights() = %v, want %v", w, blockfall.DefaultWeights())
	}
}

func TestRuntime(t *testing.T) {
	rc := Default().Runtime(42)
	if rc.Width != 10 || rc.Height != 20 {
		t.Errorf("size = %dx%d", rc.Width, rc.Height)
	}
	if rc.TickInterval != 500*time.Millisecond || rc.PollInterval != time.Millisecond {
		t.Errorf("intervals = %v, %v", rc.TickInterval, rc.PollInterval)
	}
	if rc.SpawnEvery != 10 || rc.MaxTicks != 100 || rc.Seed != 42 {
		t.Errorf("RuntimeConfig = %+v", rc)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip changed config:\n%s", data)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name   string
		tickMS int
		spawn  int
	}{
		{"slow", 800, 12},
		{"normal", 500, 10},
		{"fast", 250, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseSpeedPreset(tt.name)
			if err != nil {
				t.Fatalf("ParseSpeedPreset: %v", err)
			}
			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Timing.TickMS != tt.tickMS || cfg.Timing.SpawnEvery != tt.spawn {
				t.Errorf("timing = %+v", cfg.Timing)
			}
		})
	}

	if _, err := ParseSpeedPreset("ludicrous"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	cfg := Default()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("empty preset should not change the config")
	}
}

// isolate points the home and working directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  width: 12\ntiming:\n  max_ticks: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 20 {
		t.Errorf("board = %+v, want 12x20", cfg.Board)
	}
	if cfg.Timing.MaxTicks != 0 || cfg.Timing.TickMS != 500 {
		t.Errorf("timing = %+v", cfg.Timing)
	}
	if !reflect.DeepEqual(cfg.Pieces.Weights, Default().Pieces.Weights) {
		t.Errorf("weights should default, got %v", cfg.Pieces.Weights)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "board: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed custom file")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", FileName), "board:\n  height: 30\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Height != 30 {
		t.Errorf("local config not used, height = %d", cfg.Board.Height)
	}

	writeFile(t, filepath.Join(home, ".blockfall", "config.yaml"), "board:\n  height: 25\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Height != 25 {
		t.Errorf("user config should win, height = %d", cfg.Board.Height)
	}
}

func TestLoadSkipsMalformedImplicitFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".blockfall", "config.yaml"), "board: [unclosed\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("malformed user config should fall through to defaults")
	}
}

func TestLoadReplacesWeights(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "w.yaml")
	writeFile(t, path, "pieces:\n  weights:\n    block: 256\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Pieces.Weights) != 1 {
		t.Errorf("weights should be replaced, got %v", cfg.Pieces.Weights)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("single-kind weights should fail validation, got %v", err)
	}
}
