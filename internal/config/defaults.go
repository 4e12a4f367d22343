package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			TickMS:     500,
			SpawnEvery: 10,
			MaxTicks:   100,
		},
		Input: InputConfig{
			PollMS: 1,
			Left:   "a",
			Right:  "d",
			Quit:   "q",
		},
		Pieces: PiecesConfig{
			Weights: map[string]int{
				"block":   40,
				"bar":     76,
				"tromino": 100,
				"tee":     20,
				"skew":    20,
			},
		},
		Glyphs: GlyphConfig{
			Empty:  "  ",
			Filled: "**",
			Piece:  "[]",
		},
	}
}
