package blockfall

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Step is the outcome of one Session.Advance call.
type Step struct {
	Tick    int   // tick number the frame belongs to, starting at 0
	Frame   Frame // grid as stamped before the pieces moved
	Spawned bool  // a piece was spawned after the frame
	Kind    Kind  // kind of the spawned piece
	Index   int   // index of the spawned piece
	// Full is set on the single step where a spawn first hit ErrCapacity.
	Full bool
	// Done is set when the step reached the configured tick limit.
	Done bool
}

// Session couples a Board with its lock, factory and spawn schedule.
// It is the single shared object between the input listener and the game
// loop: every read or write of the board happens while holding its mutex.
type Session struct {
	mu      sync.Mutex
	cfg     core.RuntimeConfig
	weights Weights
	board   *Board
	factory *Factory
	tick    int
	full    bool
}

// NewSession creates a session with an empty board.
func NewSession(cfg core.RuntimeConfig, w Weights) (*Session, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("blockfall: invalid board size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.SpawnEvery < 1 {
		return nil, fmt.Errorf("blockfall: spawn interval must be positive, got %d", cfg.SpawnEvery)
	}
	f, err := NewFactory(cfg.Seed, w)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:     cfg,
		weights: w,
		board:   NewBoard(cfg.Width, cfg.Height),
		factory: f,
	}, nil
}

// Config returns the runtime configuration, including the current seed.
func (s *Session) Config() core.RuntimeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// ApplyInput moves the active piece. It reports false when no piece is active.
func (s *Session) ApplyInput(d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.ApplyInput(d)
}

// Advance renders one frame (which also moves every piece one step) and,
// on spawn ticks, adds a new piece afterwards. Once the board is full,
// spawning stops and the session keeps ticking.
func (s *Session) Advance() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := Step{
		Tick:  s.tick,
		Frame: s.board.RenderFrame(),
	}

	if !s.full && s.tick%s.cfg.SpawnEvery == 0 {
		k := s.factory.Next()
		i, err := s.board.Spawn(k)
		switch {
		case errors.Is(err, ErrCapacity):
			s.full = true
			step.Full = true
		case err == nil:
			step.Spawned = true
			step.Kind = k
			step.Index = i
		}
	}

	s.tick++
	step.Done = s.doneLocked()
	return step
}

// Tick returns the number of completed Advance calls.
func (s *Session) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Done reports whether the tick limit has been reached.
// A MaxTicks of zero means the session never finishes on its own.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doneLocked()
}

func (s *Session) doneLocked() bool {
	return s.cfg.MaxTicks > 0 && s.tick >= s.cfg.MaxTicks
}

// Full reports whether spawning stopped because the board ran out of tags.
func (s *Session) Full() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.full
}

// Cell reads one board cell under the lock.
func (s *Session) Cell(x, y int) Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Cell(x, y)
}

// Snapshot captures the board state under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

// Reset starts over with an empty board and a factory reseeded with seed.
func (s *Session) Reset(seed int64) error {
	f, err := NewFactory(seed, s.weights)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Seed = seed
	s.board = NewBoard(s.cfg.Width, s.cfg.Height)
	s.factory = f
	s.tick = 0
	s.full = false
	return nil
}
