package core

import "time"

// RuntimeConfig holds the fixed construction parameters of one game run.
type RuntimeConfig struct {
	Width        int           // Board width in cells
	Height       int           // Board height in cells
	TickInterval time.Duration // Wall-clock period between simulation ticks
	SpawnEvery   int           // Spawn a piece on ticks where tick % SpawnEvery == 0
	MaxTicks     int           // Stop after this many ticks; 0 runs until quit
	PollInterval time.Duration // Input listener poll timeout
	Seed         int64         // RNG seed for the piece factory
}

// DefaultConfig returns the classic 10x20 board at two ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:        10,
		Height:       20,
		TickInterval: 500 * time.Millisecond,
		SpawnEvery:   10,
		MaxTicks:     100,
		PollInterval: time.Millisecond,
		Seed:         0, // 0 means use current time in the platform layer
	}
}
