package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/jumper"
	"github.com/vovakirdan/pixel-jumper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pixel Jumper",
	Long: `Start a game in the terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/W   - Start, jump
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Logs are discarded while playing unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	jcfg, source, err := config.LoadJumper(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := jumper.New(jcfg)
	if err := tui.Run(game, cfg, jcfg.Input.HoldTicks, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
