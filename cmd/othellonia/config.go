package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othellonia/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a match would use, after the search order
(--config, ~/.othellonia/config.yaml, ./configs/othellonia.yaml, built-in
defaults) and any --preset are applied.

Redirect the output to start a config file of your own:
  othellonia config --default > ~/.othellonia/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := config.Default()
	if !flagConfigDefault {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if flagPreset != "" {
		p, _ := config.ParsePreset(flagPreset) // validated by applyGlobalFlags
		config.ApplyPreset(&cfg, p)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
