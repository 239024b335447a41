// Package term runs the dodge simulation directly on a tcell screen.
// Unlike the Bubble Tea front-end it owns the loop: a goroutine polls
// terminal events into a channel and the main loop paces ticks with
// core.Pacer.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

const eventBuffer = 64

// Options configures the runner.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Diagnostic sink; nil discards
	Clock   core.Clock  // Defaults to the system clock
}

// Runner drives one session on a tcell screen.
type Runner struct {
	screen  tcell.Screen
	session *dodge.Session
	buf     *core.Screen
	latch   *core.KeyLatch
	clock   core.Clock
	pacer   *core.Pacer
	store   *storage.Store
	logger  *log.Logger
	led     *led

	runs int
	quit bool
}

// led records the session's status light for the status line.
type led struct {
	lit bool
}

func (l *led) SetLit(on bool) { l.lit = on }

// New creates a runner on an initialized screen.
func New(screen tcell.Screen, cfg config.DodgeConfig, store *storage.Store, opts Options) *Runner {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}

	l := &led{}
	sessionOpts := []dodge.Option{
		dodge.WithIndicator(l),
		dodge.WithSeed(rt.Seed),
	}
	if opts.Logger != nil {
		sessionOpts = append(sessionOpts, dodge.WithEventSink(opts.Logger))
	}

	return &Runner{
		screen:  screen,
		session: dodge.New(cfg, sessionOpts...),
		buf:     core.NewScreen(rt.ScreenW, rt.ScreenH, cfg.Field.Width, cfg.Field.Height),
		latch:   core.NewKeyLatch(rt.Hold()),
		clock:   clock,
		pacer:   core.NewPacer(clock, rt.TickPeriod()),
		store:   store,
		logger:  opts.Logger,
		led:     l,
	}
}

// Run loops until a quit key is pressed or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.screen.EnableFocus()
	r.screen.HideCursor()
	r.screen.Clear()

	for {
		start := r.pacer.Begin()

	drain:
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				r.HandleEvent(ev)
			default:
				break drain
			}
		}
		if r.quit {
			return nil
		}

		r.Tick(start)
		r.pacer.Wait(start)
	}
}

// HandleEvent applies one terminal event.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			r.quit = true
			return
		}
		now := r.clock.Now()
		for _, b := range buttons(ev) {
			r.latch.Press(b, now)
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			r.latch.Release()
		}
	case *tcell.EventResize:
		r.latch.Release()
		r.screen.Clear()
		r.screen.Sync()
	}
}

// Tick steps the session with the buttons held at tickStart and shows the
// result.
func (r *Runner) Tick(tickStart time.Duration) {
	result := r.session.Step(r.latch.Sample(tickStart))
	if result.Finished != nil {
		r.recordRun(result.Finished)
	}
	r.session.Render(r.buf)
	r.draw()
}

// recordRun stores a finished run in the ledger.
func (r *Runner) recordRun(sum *dodge.RunSummary) {
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		Score:   sum.Score,
		Demo:    sum.Demo,
		Ticks:   sum.Ticks,
		Aborted: sum.Aborted,
	})
	if err != nil {
		if r.logger != nil {
			r.logger.Error("cannot record run", "err", err)
		}
		return
	}
	r.runs++
}

// origin returns where the field's top-left cell goes, centred on screen.
func (r *Runner) origin() (int, int) {
	w, h := r.screen.Size()
	ox := max((w-r.buf.Width())/2, 0)
	oy := max((h-r.buf.Height()-1)/2, 0)
	return ox, oy
}

// draw blits the cell buffer and the status line, then shows the frame.
func (r *Runner) draw() {
	ox, oy := r.origin()
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(ox+x, oy+y, cell.Rune, nil, cellStyle(cell))
		}
	}

	status := fmt.Sprintf(" %-8s score %-5d best %-5d runs %d",
		r.mode(), r.session.Score(), r.session.HighScore(), r.runs)
	ledStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(238))
	if r.led.lit {
		ledStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(10)).Bold(true)
	}
	sy := oy + r.buf.Height()
	r.screen.SetContent(ox, sy, '●', nil, ledStyle)
	drawString(r.screen, ox+1, sy, status, tcell.StyleDefault.Foreground(tcell.PaletteColor(245)))

	r.screen.Show()
}

func (r *Runner) mode() string {
	if r.session.Demo() && r.session.State() == dodge.StatePlaying {
		return "demo"
	}
	return r.session.State().String()
}

// Session returns the running session.
func (r *Runner) Session() *dodge.Session {
	return r.session
}

// Runs returns how many runs this runner recorded.
func (r *Runner) Runs() int {
	return r.runs
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// Play opens the terminal, runs a session until the player quits and
// restores the terminal.
func Play(ctx context.Context, cfg config.DodgeConfig, store *storage.Store, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	if err := New(screen, cfg, store, opts).Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("term: %w", err)
	}
	return nil
}
