// othellonia is a 6x6 othello variant for the terminal where every capture
// deals damage to the opponent's life.
//
// Usage:
//
//	othellonia list              - List available modes
//	othellonia play <mode>       - Play a mode (pvp, cpu, demo)
//	othellonia menu              - Pick a mode interactively
//	othellonia serve             - Start SSH server for remote play
//	othellonia sim               - Run a computer-vs-computer match headless
//	othellonia config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible computer moves
//	--config <path>     - Use a custom config YAML
//	--preset <name>     - Match length: quick, standard, long
//	--log-file <path>   - Write debug logs to a file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othellonia/internal/config"
	"github.com/vovakirdan/tui-othellonia/internal/games/othellonia"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "othellonia",
	Short: "Othellonia - othello with hit points, in your terminal",
	Long: `Othellonia is a 6x6 othello variant. Every move deals damage to the
opponent: more flips hit harder, and a move that closes a line on one of your
own placed stones is a threat with bonus damage. Bring the opponent's life to
zero, or have more life left when neither side can move.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  sim      - Run a computer-vs-computer match and print the log
  config   - Print the effective configuration

Examples:
  othellonia play pvp
  othellonia play cpu --cpu-color black
  othellonia menu --preset quick
  othellonia serve --ssh :2222
  othellonia sim --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGlobalFlags()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Match length preset: quick, standard, long")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags hands the config path and preset to the game package
// before any mode is created.
func applyGlobalFlags() error {
	othellonia.SetConfigPath(flagConfig)
	if flagPreset == "" {
		othellonia.SetPreset("")
		return nil
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	othellonia.SetPreset(preset)
	return nil
}
