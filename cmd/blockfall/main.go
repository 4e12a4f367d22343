// blockfall is a falling-block puzzle that runs in the terminal.
//
// Usage:
//
//	blockfall play      - Play on the plain console (raw key input, full redraw per tick)
//	blockfall tui       - Play in a full-screen Bubble Tea interface
//	blockfall pieces    - List piece variants, their shapes and draw ranges
//	blockfall config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--speed <preset>    - slow, normal or fast
//	--width, --height   - Board size in cells
//	--tick <ms>         - Tick interval in milliseconds
//	--ticks <n>         - Stop after n ticks (0 = until quit)
//	--seed <value>      - RNG seed for reproducible piece sequences
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSpeed    string
	flagWidth    int
	flagHeight   int
	flagTickMS   int
	flagTicks    int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle for your terminal",
	Long: `Blockfall drops pieces onto a board one row per tick. Steer the newest
piece left and right before it lands.

Available commands:
  play     - Plain console frontend
  tui      - Full-screen frontend
  pieces   - Show piece shapes
  config   - Show effective configuration

Examples:
  blockfall play
  blockfall play --speed fast --ticks 0
  blockfall tui --width 12 --height 24
  blockfall config --config ./my-blockfall.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	pf.IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	pf.IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	pf.IntVar(&flagTickMS, "tick", 0, "Tick interval in milliseconds (overrides config)")
	pf.IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks, 0 = until quit (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default stderr)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}
