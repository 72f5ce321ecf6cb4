package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othellonia/internal/games/othellonia"
	"github.com/vovakirdan/tui-othellonia/internal/othello"
	"github.com/vovakirdan/tui-othellonia/internal/platform/tui"
	"github.com/vovakirdan/tui-othellonia/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode and left/right to choose the computer's
color. Press Esc or B during a match to return to the menu.

Examples:
  othellonia menu
  othellonia menu --preset long`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("othellonia", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	othellonia.SetLogger(logger)

	cfg := terminalConfig()
	cpu := othello.White

	for {
		res, err := tui.RunMenu(cfg, cpu)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config
		cpu = res.CPUColor
		if res.Quit {
			return
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			continue
		}
		if g, ok := game.(*othellonia.Game); ok {
			g.UseCPUColor(cpu)
		}

		// Fresh seed per match unless one was given.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
