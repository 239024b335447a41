package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	termbackend "github.com/vovakirdan/tui-dodge/internal/platform/term"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Room needed around the cell screen: border, status line and help line.
const (
	chromeW = 2
	chromeH = 4
)

var (
	flagBackend string
	flagLogFile string
	flagBoard   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  b / Left     - Move left
  y / Right    - Move right
  a / z        - Fire left
  x / c        - Fire right
  d / Space    - Both fire buttons: bomb while playing, demo on the title
  Q / Ctrl+C   - Quit

Backends:
  tui    - Bubble Tea (default)
  tcell  - tcell screen driven by its own frame pacer

Examples:
  dodge play
  dodge play --backend tcell
  dodge play --difficulty fixed --log-file dodge.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Terminal backend: tui, tcell")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write diagnostic events to this file")
	playCmd.Flags().BoolVar(&flagBoard, "board", true, "Show the runs board after quitting")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagBackend != "tui" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	// The terminal is busy drawing the game, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, flagVerbose)

	rt := core.DefaultConfig()
	rt.Seed = flagSeed

	width, height := rt.ScreenW+chromeW, rt.ScreenH+chromeH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < width || h < height {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, width, height)
		}
		width, height = w, h
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open runs ledger", "error", err)
		// Continue without the ledger - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	switch flagBackend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = termbackend.Play(ctx, cfg, store, termbackend.Options{Runtime: rt, Logger: logger})
	default:
		err = tui.Run(cfg, store, tui.Options{Runtime: rt, Logger: logger})
	}
	if err != nil {
		return err
	}

	if flagBoard && store != nil {
		if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
			return tui.RunRunsBoard(store, width, height)
		}
	}
	return nil
}
