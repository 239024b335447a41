package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagTicks int
	flagHuman bool
	flagTop   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal, as fast as possible.

By default the autoplay demo plays: both fire buttons are held on the
title screen, so every game is a demo game. With --human a single press
starts normal games instead and the ship is left idle until it is hit.

Every finished game is recorded in an in-memory ledger; the summary lists
the best runs and a hash of the final state, which is identical for
identical seeds and tick counts.

Examples:
  dodge sim
  dodge sim --ticks 72000 --seed 7
  dodge sim --human --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 6000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagHuman, "human", false, "Start normal games instead of demo games")
	simCmd.Flags().IntVar(&flagTop, "top", 5, "Number of best runs to list")
}

// simReport summarizes a headless run.
type simReport struct {
	Ticks    int
	Runs     int
	Final    dodge.Snapshot
	Hash     uint64
	Duration time.Duration
}

// simInput scripts the buttons for one tick. Demo mode holds the chord
// whenever the title is showing. Human mode taps B on the title and game
// over screens, releasing between taps so that every tap is a new press.
func simInput(st dodge.State, human bool, prev core.InputFrame) core.InputFrame {
	if human {
		if st != dodge.StatePlaying && !prev.Any() {
			return core.NewInputFrame(core.ButtonB)
		}
		return core.NewInputFrame()
	}
	if st == dodge.StateTitle {
		return core.NewInputFrame(core.ButtonA, core.ButtonX)
	}
	return core.NewInputFrame()
}

// simulate steps a session for ticks ticks, recording finished runs.
func simulate(cfg config.DodgeConfig, seed uint32, ticks int, human bool, store *storage.Store, logger *log.Logger) (simReport, error) {
	opts := []dodge.Option{dodge.WithEventSink(logger)}
	if seed != 0 {
		opts = append(opts, dodge.WithSeed(seed))
	}
	s := dodge.New(cfg, opts...)
	period := core.DefaultConfig().TickPeriod()

	began := time.Now()
	report := simReport{Ticks: ticks}
	var in core.InputFrame
	for i := range ticks {
		in = simInput(s.State(), human, in)
		in.At = time.Duration(i) * period

		result := s.Step(in)
		if result.Finished == nil {
			continue
		}
		if _, err := store.SaveRun(storage.Run{
			Score:   result.Finished.Score,
			Demo:    result.Finished.Demo,
			Ticks:   result.Finished.Ticks,
			Aborted: result.Finished.Aborted,
		}); err != nil {
			return report, err
		}
		report.Runs++
	}

	report.Final = s.Snapshot()
	report.Hash = report.Final.Hash()
	report.Duration = time.Since(began)
	return report, nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := simulate(cfg, flagSeed, flagTicks, flagHuman, store, logger)
	if err != nil {
		return err
	}
	return printReport(cmd.OutOrStdout(), report, store, flagTop)
}

// printReport writes the summary and the best runs.
func printReport(w io.Writer, r simReport, store *storage.Store, top int) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	simulated := time.Duration(r.Ticks) * core.DefaultConfig().TickPeriod()
	fmt.Fprintf(w, "Simulated %d ticks (%s of play) in %s\n", r.Ticks, simulated, r.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "Finished runs: %d  best: %d  avg: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	fmt.Fprintf(w, "Final state: %s  score: %d  high: %d  hash: %016x\n",
		r.Final.State, r.Final.Score, r.Final.HighScore, r.Hash)
	fmt.Fprintln(w)

	if stats.Runs == 0 {
		fmt.Fprintln(w, "No runs finished yet. Try more --ticks.")
		return nil
	}

	runs, err := store.TopRuns(top, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Mode")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")
	for i, run := range runs {
		mode := "player"
		if run.Demo {
			mode = "demo"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %s\n", i+1, run.Score, run.Ticks, mode)
	}
	return nil
}
