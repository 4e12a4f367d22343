package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the plain console",
	Long: `Play with the console frontend: one goroutine reads keys, another
advances the board and redraws it in full every tick.

Controls (defaults, see config):
  a          - Move left
  d          - Move right
  q/Ctrl+C   - Quit

Without --log-file, logs go to stderr only when stdin is not a terminal;
the raw-mode screen is redrawn every tick and would be garbled by them.

Examples:
  blockfall play
  blockfall play --seed 42 --ticks 200
  blockfall play --log-level debug --log-file blockfall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	weights, err := cfg.Weights()
	if err != nil {
		return err
	}
	keymap, err := cfg.KeyMap()
	if err != nil {
		return err
	}
	rc := cfg.Runtime(seed())
	session, err := blockfall.NewSession(rc, weights)
	if err != nil {
		return err
	}

	terminal, err := console.OpenTerminal(os.Stdin)
	if err != nil {
		return err
	}
	defer terminal.Close() //nolint:errcheck // Restores the terminal; nothing to do on failure

	logger, closeLog, err := newLogger(consoleLogOutput(terminal.Raw()))
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cols, rows := blockfall.FrameSize(rc.Width, rc.Height)
	if w, h, ok := console.Size(os.Stdout); ok && (w < cols || h < rows) {
		logger.Warn("terminal smaller than board", "need", fmt.Sprintf("%dx%d", cols, rows), "have", fmt.Sprintf("%dx%d", w, h))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "board", fmt.Sprintf("%dx%d", rc.Width, rc.Height),
		"tick", rc.TickInterval, "seed", rc.Seed, "raw", terminal.Raw())

	return console.Run(ctx, console.Options{
		Session: session,
		Keys:    terminal,
		KeyMap:  keymap,
		Out:     os.Stdout,
		Glyphs:  cfg.GlyphSet(),
		Raw:     terminal.Raw(),
		Logger:  logger,
	})
}

// consoleLogOutput is where logs go without --log-file. A raw terminal is
// redrawn every tick and does not translate "\n", so logs are dropped there.
func consoleLogOutput(raw bool) io.Writer {
	if raw {
		return io.Discard
	}
	return os.Stderr
}
