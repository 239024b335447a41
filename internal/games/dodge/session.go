// Package dodge implements the dodge-and-shoot simulation: a fixed 20 Hz
// session state machine that owns the entity pools, scoring, difficulty,
// power-ups and the autoplay controller. It has no I/O of its own; a run
// loop feeds it sampled button levels and asks it to render into a
// core.Surface.
package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// State is one of the three session screens.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (st State) String() string {
	switch st {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player is the ship's state.
type Player struct {
	X          int
	Lives      int
	Bombs      int
	Invincible int // Ticks left in the post-hit grace window
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score   int
	Demo    bool
	Ticks   int  // Playing ticks
	Aborted bool // A demo run interrupted by input rather than lost
}

// StepResult reports what one tick did.
type StepResult struct {
	State    State
	Changed  bool        // The state changed during this tick
	Finished *RunSummary // Set on the tick a run ends
}

// Session is the whole simulation. It is owned by a single run loop and is
// not safe for concurrent use.
type Session struct {
	cfg        config.DodgeConfig
	difficulty *config.DifficultyManager
	rng        *Rng
	events     EventSink
	indicator  core.Indicator
	tickSource func(core.InputFrame) uint32
	reseeded   bool // First-input reseed already happened (or is disabled)
	edges      core.EdgeDetector

	state         State
	demo          bool
	frame         uint32 // Wrapping tick counter, advanced every tick
	drawFrame     uint32 // Frame the last tick ran with, for blink phases
	gameOverTicks int    // Ticks spent on the demo game-over screen
	playTicks     int

	player     Player
	score      int
	baseline   int // Score at which difficulty progress restarts
	highScore  int
	spawnTimer int
	giftTimer  int
	timers     TimerBank
	pools      Pools
	beam       beam

	// Render bookkeeping
	staticPending bool
	hud           hudCache

	// Per-tick outputs
	changed  bool
	finished *RunSummary
}

// Option configures a Session.
type Option func(*Session)

// WithEventSink routes diagnostic events to sink.
func WithEventSink(sink EventSink) Option {
	return func(s *Session) {
		if sink != nil {
			s.events = sink
		}
	}
}

// WithIndicator attaches a status light that is lit while Playing.
func WithIndicator(ind core.Indicator) Option {
	return func(s *Session) {
		s.indicator = ind
	}
}

// WithSeed boots the generator with seed instead of the configured boot
// seed and disables the reseed on first input, making the session fully
// reproducible. A zero seed is ignored.
func WithSeed(seed uint32) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rng.Reseed(seed)
			s.reseeded = true
		}
	}
}

// WithTickSource overrides where the first-input reseed value comes from.
// By default it is the input timestamp in microseconds.
func WithTickSource(fn func(core.InputFrame) uint32) Option {
	return func(s *Session) {
		if fn != nil {
			s.tickSource = fn
		}
	}
}

// New creates a session in the Title state.
func New(cfg config.DodgeConfig, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        NewRng(cfg.BootSeed),
		events:     discardSink{},
		tickSource: microsSinceBoot,
		pools: NewPools(
			cfg.Obstacles.Capacity,
			cfg.Missiles.Capacity,
			cfg.Particles.Capacity,
			cfg.Gifts.Capacity,
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = StateTitle
	s.enter(StateTitle)
	return s
}

func microsSinceBoot(in core.InputFrame) uint32 {
	return uint32(in.At / time.Microsecond) //#nosec G115 -- truncation is fine for a seed
}

// Step advances the simulation by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.changed = false
	s.finished = nil
	edges := s.edges.Detect(in)

	if !s.reseeded && in.Any() {
		s.rng.Reseed(s.tickSource(in))
		s.reseeded = true
	}

	switch s.state {
	case StateTitle:
		s.updateTitle(in, edges)
	case StatePlaying:
		s.updatePlaying(in, edges)
	case StateGameOver:
		s.updateGameOver(edges)
	}

	s.drawFrame = s.frame
	s.frame++
	return StepResult{State: s.state, Changed: s.changed, Finished: s.finished}
}

// updateTitle starts a demo when both fire controls are held, otherwise a
// normal game on any press.
func (s *Session) updateTitle(in core.InputFrame, e core.Edges) {
	chord := in.Has(core.ButtonA) && in.Has(core.ButtonX)
	if !chord && !e.Any() {
		return
	}
	s.demo = chord
	s.transition(StatePlaying)
}

func (s *Session) updateGameOver(e core.Edges) {
	if s.demo {
		s.gameOverTicks++
		if s.gameOverTicks >= s.cfg.Demo.GameOverTicks {
			s.transition(StateTitle)
		}
		return
	}
	if e.Any() {
		s.transition(StateTitle)
	}
}

// transition leaves the current state and enters to, running each hook
// exactly once.
func (s *Session) transition(to State) {
	from := s.state
	s.exit(from)
	s.state = to
	s.enter(to)
	s.changed = true
	s.events.Info("state", "from", from.String(), "to", to.String(), "demo", s.demo)
}

func (s *Session) enter(st State) {
	s.staticPending = true
	switch st {
	case StatePlaying:
		s.enterPlaying()
	case StateGameOver:
		s.enterGameOver()
	}
	s.setIndicator(st == StatePlaying)
}

func (s *Session) exit(st State) {
	if st == StatePlaying {
		s.finished = &RunSummary{
			Score:   s.score,
			Demo:    s.demo,
			Ticks:   s.playTicks,
			Aborted: s.player.Lives > 0,
		}
	}
}

// enterPlaying resets everything a new game starts from.
func (s *Session) enterPlaying() {
	s.player = Player{
		X:     (s.cfg.Field.Width - s.cfg.Player.Width) / 2,
		Lives: s.cfg.Player.MaxLives,
		Bombs: s.cfg.Player.MaxBombs,
	}
	s.pools.Clear()
	s.timers.Reset()
	s.score = 0
	s.baseline = 0
	s.spawnTimer = 0
	s.giftTimer = 0
	s.playTicks = 0
	s.beam = beam{}
	s.hud.invalidate()
	if s.demo {
		s.events.Info("demo start")
	} else {
		s.events.Info("game start")
	}
}

// enterGameOver captures the high score.
func (s *Session) enterGameOver() {
	s.highScore = max(s.highScore, s.score)
	s.gameOverTicks = 0
	s.events.Info("game over", "score", s.score, "best", s.highScore)
}

func (s *Session) setIndicator(on bool) {
	if s.indicator != nil {
		s.indicator.SetLit(on)
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Demo reports whether the current (or last) game is a demo.
func (s *Session) Demo() bool {
	return s.demo
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score of this process.
func (s *Session) HighScore() int {
	return s.highScore
}
