package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// Listener polls for keys and applies moves to the session's active piece.
type Listener struct {
	Session *blockfall.Session
	Keys    KeySource
	KeyMap  core.KeyMap
	Poll    time.Duration
	Logger  *log.Logger
}

// Run polls until ctx is done, the input ends, or the quit key arrives,
// in which case it returns ErrQuit. Each poll waits at most l.Poll and
// never holds the session lock.
func (l *Listener) Run(ctx context.Context) error {
	for {
		r, ok, err := l.Keys.Poll(ctx, l.Poll)
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, io.EOF):
			l.Logger.Info("input closed")
			return nil
		case err != nil:
			l.Logger.Error("read input", "err", err)
			return fmt.Errorf("console: read input: %w", err)
		case !ok:
			continue
		}

		action := l.KeyMap.Lookup(r)
		if action == core.ActionQuit {
			return ErrQuit
		}
		if d, isMove := blockfall.DirectionFor(action); isMove {
			applied := l.Session.ApplyInput(d)
			l.Logger.Debug("input", "action", action, "applied", applied)
		}
	}
}
