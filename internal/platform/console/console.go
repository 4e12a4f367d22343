// Package console runs a blockfall session on a plain terminal: one
// goroutine listens for keys, another advances and prints the board at a
// fixed cadence. Both share only the Session, which serializes access.
package console

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// ErrQuit is returned by the listener when the player presses the quit key.
var ErrQuit = errors.New("console: quit requested")

// Options configures Run.
type Options struct {
	Session *blockfall.Session
	Keys    KeySource
	KeyMap  core.KeyMap
	Out     io.Writer
	Glyphs  blockfall.GlyphSet
	Raw     bool // terminal is in raw mode
	Logger  *log.Logger
}

// Run plays the session until the tick limit, the quit key, a failure of
// either goroutine, or ctx cancellation. Quitting is not an error.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Session.Config()

	listener := &Listener{
		Session: opts.Session,
		Keys:    opts.Keys,
		KeyMap:  opts.KeyMap,
		Poll:    cfg.PollInterval,
		Logger:  logger,
	}
	loop := &Loop{
		Session:  opts.Session,
		Printer:  NewPrinter(opts.Out, opts.Glyphs, opts.Raw),
		Interval: cfg.TickInterval,
		Logger:   logger,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The listener has no end of its own; stop it with the loop.
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return listener.Run(gctx)
	})

	err := g.Wait()
	switch {
	case errors.Is(err, ErrQuit):
		logger.Info("shutdown", "reason", "quit", "ticks", opts.Session.Tick())
		return nil
	case err != nil:
		logger.Error("shutdown", "reason", "error", "err", err)
		return err
	}

	reason := "tick limit"
	if !opts.Session.Done() {
		reason = "canceled"
	}
	logger.Info("shutdown", "reason", reason, "ticks", opts.Session.Tick())
	return nil
}
