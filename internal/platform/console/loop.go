package console

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// Loop advances the session at a fixed cadence and prints every frame.
type Loop struct {
	Session  *blockfall.Session
	Printer  *Printer
	Interval time.Duration
	Logger   *log.Logger
}

// Run ticks until the session reaches its tick limit or ctx is done.
// The session lock is held only inside Advance; printing and waiting
// happen outside it.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		step := l.Session.Advance()
		if step.Spawned {
			l.Logger.Debug("spawn",
				"tick", step.Tick,
				"index", step.Index,
				"kind", step.Kind,
				"tag", blockfall.TagFor(step.Index))
		}
		if step.Full {
			l.Logger.Warn("board full, spawning stopped", "tick", step.Tick, "pieces", blockfall.Capacity)
		}

		if err := l.Printer.Print(step.Frame); err != nil {
			return err
		}
		if step.Done {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
