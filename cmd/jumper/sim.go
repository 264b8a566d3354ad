package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/jumper"
)

var (
	flagTicks int
	flagEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Run the simulation without a terminal UI. A simple autopilot starts
the run, jumps whenever it stands on a platform and steers towards the
nearest platform above. Snapshots are logged every --every ticks and a
summary line is printed at the end.

The same --seed and config always produce the same run.

Examples:
  jumper sim --ticks 3000 --seed 7
  jumper sim --ticks 600 --every 60 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagEvery, "every", 300, "Log a snapshot every N ticks")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 || flagEvery <= 0 {
		return fmt.Errorf("--ticks and --every must be positive")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	jcfg, source, err := config.LoadJumper(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulation started", "seed", seed, "ticks", flagTicks)

	w := jumper.NewWorld(jcfg, rand.New(rand.NewSource(seed)))
	final := simulate(w, flagTicks, flagEvery, logger)

	fmt.Fprintf(cmd.OutOrStdout(), "seed=%d tick=%d phase=%s score=%d\n",
		seed, final.Tick, final.Phase, final.Score)
	return nil
}

// simulate steps the world with the autopilot until the tick budget runs out
// or the run ends, and returns the last snapshot.
func simulate(w *jumper.World, ticks, every int, logger *log.Logger) jumper.Snapshot {
	for i := 1; i <= ticks; i++ {
		w.Step(jumper.Autopilot(w))

		if i%every == 0 {
			logSnapshot(logger, w.Snapshot())
		}
		if w.Phase() == jumper.PhaseGameOver {
			logger.Info("game over", "tick", w.Tick(), "score", w.Score())
			break
		}
	}
	return w.Snapshot()
}

func logSnapshot(logger *log.Logger, s jumper.Snapshot) {
	logger.Info("snapshot",
		"tick", s.Tick,
		"phase", s.Phase,
		"score", s.Score,
		"x", fmt.Sprintf("%.0f", s.PlayerX),
		"y", fmt.Sprintf("%.0f", s.PlayerY),
		"dy", s.PlayerDY,
		"grounded", s.OnGround,
	)
}
