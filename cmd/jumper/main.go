// jumper is an auto-scrolling platform jumping game for the terminal.
//
// Usage:
//
//	jumper                   - Play (same as "jumper play")
//	jumper play              - Play in the terminal
//	jumper sim --ticks N     - Run a headless game with an autopilot
//	jumper config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom jumper.yaml
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
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
	Use:   "jumper",
	Short: "Pixel Jumper - jump your way up an endless tower",
	Long: `Pixel Jumper is an auto-scrolling platform game for the terminal.
Land on platforms, collect coins and keep climbing. Falling off the
bottom of the screen ends the run.

Available commands:
  play     - Play the game (default)
  sim      - Run a headless game with an autopilot
  config   - Print the effective configuration

Examples:
  jumper
  jumper play --seed 42
  jumper sim --ticks 3000 --seed 7
  jumper config --config ./my-jumper.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom jumper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
