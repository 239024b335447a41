// dodge is a terminal dodge-and-shoot game running a fixed 20 Hz simulation.
//
// Usage:
//
//	dodge play               - Play in the terminal
//	dodge sim                - Run the simulation headless and print a summary
//	dodge config             - Print the effective game configuration
//	dodge version            - Print the version
//
// Global flags:
//
//	--seed <value>        - Boot RNG seed (0 = built-in seed, reseeded on first input)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - normal or fixed
//	--verbose             - Log diagnostic events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagSeed       uint32
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - dodge and shoot falling blocks in your terminal",
	Long: `Dodge is a small arcade game: steer the ship along the bottom of the
field, dodge the falling blocks and shoot them down for points.

Available commands:
  play     - Play in the terminal
  sim      - Run the simulation headless
  config   - Print the effective configuration
  version  - Print the version

Examples:
  dodge play
  dodge play --backend tcell --difficulty fixed
  dodge sim --ticks 12000 --seed 7
  dodge config > my-dodge.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = built-in seed, reseeded on first input)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostic events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.DodgeConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.DodgeConfig{}, err
	}
	cfg, err := config.LoadDodge(path)
	if err != nil {
		return config.DodgeConfig{}, fmt.Errorf("config: %w", err)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates the diagnostic logger. Verbose logging reports every
// session event; otherwise only warnings and errors get through.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
	})
	if verbose {
		logger.SetLevel(log.InfoLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dodge %s\n", version)
	},
}
