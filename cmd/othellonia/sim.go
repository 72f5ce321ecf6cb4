package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othellonia/internal/config"
	"github.com/vovakirdan/tui-othellonia/internal/match"
)

var flagSimQuiet bool

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a computer-vs-computer match and print the battle log",
	Long: `Play a complete match between two random computer players without a
terminal UI. Every move is printed in battle log form, followed by the final
board and the result. The same --seed always produces the same match.

Examples:
  othellonia sim --seed 42
  othellonia sim --preset quick --quiet`,
	Run: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the result")
}

// errStalled is returned when the computer has nothing scheduled before the
// match is over.
var errStalled = errors.New("sim: match stalled")

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("othellonia-sim", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		p, _ := config.ParsePreset(flagPreset) // validated by applyGlobalFlags
		config.ApplyPreset(&cfg, p)
	}

	var out io.Writer = os.Stdout
	if flagSimQuiet {
		out = io.Discard
	}
	st, err := simulate(out, cfg, flagSeed, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimQuiet {
		fmt.Println(st.Result)
	}
}

// simulate plays a demo match to the end, writing each move and pass to w,
// and returns the final state.
func simulate(w io.Writer, cfg config.Config, seed int64, logger *log.Logger) (match.State, error) {
	s := match.NewSession(match.SessionConfig{
		Mode:     match.ModeDemo,
		Seed:     seed,
		Settings: cfg.MatchSettings(),
		Logger:   logger,
	})

	// A match on a 6x6 board has at most 32 moves and twice as many passes.
	for range 200 {
		before := s.State()
		if before.Over {
			break
		}
		if !s.Flush() {
			return before, errStalled
		}
		after := s.State()
		switch {
		case len(after.Log) > len(before.Log):
			fmt.Fprintln(w, after.Log[len(after.Log)-1])
		case after.ConsecutivePasses > before.ConsecutivePasses:
			fmt.Fprintf(w, "%s %s passes\n", before.Active.Icon(), before.Active)
		}
	}

	st := s.State()
	if !st.Over {
		return st, errStalled
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final board (X/O seed, B/W placed, b/w flipped):")
	fmt.Fprintln(w, st.Board)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Life: black %d, white %d\n", st.BlackLife, st.WhiteLife)
	fmt.Fprintf(w, "Result: %s\n", st.Result)
	return st, nil
}
