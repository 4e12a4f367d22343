package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in a full-screen interface",
	Long: `Play with the Bubble Tea frontend.

Controls:
  a/Left     - Move left
  d/Right    - Move right
  P/Esc      - Pause
  R          - New game
  ?          - More keys
  q/Ctrl+C   - Quit

Logs are only written when --log-file is set, since the interface owns the screen.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	weights, err := cfg.Weights()
	if err != nil {
		return err
	}
	keymap, err := cfg.KeyMap()
	if err != nil {
		return err
	}
	session, err := blockfall.NewSession(cfg.Runtime(seed()), weights)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Session: session,
		Glyphs:  cfg.GlyphSet(),
		KeyMap:  keymap,
		Logger:  logger,
	})
}
