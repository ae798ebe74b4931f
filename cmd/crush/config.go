package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crush/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML, and where it
was loaded from. A difficulty preset is applied on top when given.

Search order:
  --config path -> ~/.crush/configs/crush.yaml -> ./configs/crush.yaml -> built-in

Examples:
  crush config
  crush config --difficulty hard
  crush config --default > ~/.crush/configs/crush.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file instead")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Apply a difficulty preset")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	fmt.Printf("# source: %s\n", source)
	if flagDifficulty != "" {
		fmt.Printf("# difficulty: %s\n", preset)
	}
	_, err = os.Stdout.Write(out)
	return err
}
