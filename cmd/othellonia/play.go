package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-othellonia/internal/core"
	"github.com/vovakirdan/tui-othellonia/internal/games/othellonia"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
	"github.com/vovakirdan/tui-othellonia/internal/platform/tui"
	"github.com/vovakirdan/tui-othellonia/internal/registry"
)

var flagCPUColor string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start a match in the given mode.

Modes:
  pvp    - two players on one keyboard, with undo and redo
  cpu    - play against a random computer opponent
  demo   - watch the computer play both colors

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Place a stone
  P            - Confirm a pass when you have no legal move
  U / Y        - Undo / redo (pvp only)
  R            - New match
  Tab          - Battle log
  ?            - All keys
  Esc/B        - Back
  Q/Ctrl+C     - Quit

Examples:
  othellonia play pvp
  othellonia play cpu --cpu-color black
  othellonia play cpu --preset quick
  othellonia play pvp --config ./my-othellonia.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCPUColor, "cpu-color", "", "Color the computer plays in cpu mode: black or white")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'othellonia list' to see available modes.")
		os.Exit(1)
	}

	cpu := othello.None
	if flagCPUColor != "" {
		c, err := othello.ParseColor(flagCPUColor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cpu = c
	}
	othellonia.SetCPUColor(cpu)

	logger, closeLog, err := newLogger("othellonia", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	othellonia.SetLogger(logger)

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting match", "mode", modeID, "seed", flagSeed)
	if _, err := tui.Run(game, terminalConfig()); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}
}
