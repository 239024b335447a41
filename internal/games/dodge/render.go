package dodge

import (
	"strconv"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// HUD layout in field pixels.
var (
	hudScoreRegion = core.NewRect(0, 0, 100, 0)
	hudBombRegion  = core.NewRect(100, 0, 35, 0)
	hudPowerRegion = core.NewRect(135, 0, 60, 0)
	hudLifeRegion  = core.NewRect(200, 0, 40, 0)
)

const (
	particleSize = 2
	hudSlotY     = 7
	demoTagX     = 64
)

// hudCache remembers the values last drawn into each HUD region.
type hudCache struct {
	valid bool
	score int
	bombs int
	lives int
	power uint8
}

func (h *hudCache) invalidate() {
	h.valid = false
}

// Render draws the current tick into dst. Static screen content is drawn
// once after each state change; while Playing the field is redrawn every
// call and each HUD region only when its value changed. dst must keep its
// content between calls.
func (s *Session) Render(dst core.Surface) {
	if s.staticPending {
		s.drawStatic(dst)
		s.staticPending = false
	}
	if s.state != StatePlaying {
		return
	}
	s.drawField(dst)
	s.drawHUD(dst)
}

func (s *Session) drawStatic(dst core.Surface) {
	dst.Clear(core.ColorBlack)
	switch s.state {
	case StateTitle:
		dst.DrawText(80, 15, "DODGE!", core.FontLarge, core.ColorYellow)
		dst.DrawText(50, 45, "B:Left Y:Right", core.FontLarge, core.ColorWhite)
		dst.DrawText(50, 70, "A:Fire X:Fire", core.FontLarge, core.ColorWhite)
		dst.DrawText(20, 105, "Press any button", core.FontLarge, core.ColorWhite)
	case StatePlaying:
		s.hud.invalidate()
	case StateGameOver:
		dst.DrawText(50, 10, "GAME OVER", core.FontLarge, core.ColorRed)
		dst.DrawText(100, 40, strconv.Itoa(s.score), core.FontLarge, core.ColorYellow)
		dst.DrawText(60, 70, "Best: "+strconv.Itoa(s.highScore), core.FontLarge, core.ColorWhite)
		dst.DrawText(20, 105, "Press any button", core.FontLarge, core.ColorWhite)
	}
}

func (s *Session) drawField(dst core.Surface) {
	fc := s.cfg.Field
	frame := s.drawFrame
	dst.FillRect(core.NewRect(0, fc.HUDHeight, fc.Width, fc.Height-fc.HUDHeight), core.ColorBlack)

	if s.beam.Hit {
		dst.DrawLine(s.beam.X0, s.beam.Y0, s.beam.X1, s.beam.Y1, core.ColorTeal)
	}

	obstacleColor := core.ColorRed
	if s.timers.Active(TimerFreeze) {
		obstacleColor = core.ColorBlue
	}
	for _, o := range s.pools.Obstacles {
		if o.Active {
			dst.FillRect(s.obstacleRect(o), obstacleColor)
		}
	}

	for _, g := range s.pools.Gifts {
		if !g.Active {
			continue
		}
		fading := g.Life <= s.cfg.Gifts.FadeTicks
		if fading && frame%4 < 2 {
			continue
		}
		c := core.ColorGreen
		if fading {
			c = core.ColorDimGreen
		}
		dst.FillRect(s.giftRect(g), c)
	}

	for _, m := range s.pools.Missiles {
		if !m.Active {
			continue
		}
		c := core.ColorYellow
		if m.Homing {
			c = core.ColorOrange
		}
		dst.FillRect(s.missileRect(m), c)
	}

	for _, p := range s.pools.Particles {
		if p.Life == 0 {
			continue
		}
		dst.FillRect(core.NewRect(p.X, p.Y, particleSize, particleSize), particleColor(p.Life))
	}

	shield := s.timers.Active(TimerShield)
	show := true
	switch {
	case shield:
		show = frame%3 != 0
	case s.player.Invincible > 0:
		show = frame%4 < 2
	}
	if show {
		c := core.ColorCyan
		if shield {
			c = core.ColorWhite
		}
		dst.FillRect(s.playerRect(), c)
	}
}

func particleColor(life int) core.Color {
	switch {
	case life > 5:
		return core.ColorWhite
	case life > 2:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func (s *Session) drawHUD(dst core.Surface) {
	h := &s.hud
	hudH := s.cfg.Field.HUDHeight

	if !h.valid || s.score != h.score {
		dst.FillRect(withHeight(hudScoreRegion, hudH), core.ColorBlack)
		dst.DrawText(4, 2, strconv.Itoa(s.score), core.FontLarge, core.ColorWhite)
		// The tag shares the score region so the bomb slots never erase it
		if s.demo {
			dst.DrawText(demoTagX, hudSlotY, "DEMO", core.FontSmall, core.ColorGray)
		}
		h.score = s.score
	}

	if !h.valid || s.player.Bombs != h.bombs {
		dst.FillRect(withHeight(hudBombRegion, hudH), core.ColorBlack)
		for i := range s.cfg.Player.MaxBombs {
			c := core.ColorDarkGray
			if i < s.player.Bombs {
				c = core.ColorGreen
			}
			dst.FillRect(core.NewRect(102+i*10, hudSlotY, 7, 8), c)
		}
		h.bombs = s.player.Bombs
	}

	if mask := s.timers.Mask(); !h.valid || mask != h.power {
		dst.FillRect(withHeight(hudPowerRegion, hudH), core.ColorBlack)
		x := 137
		for t := range timerCount {
			if !s.timers.Active(t) {
				continue
			}
			dst.DrawText(x, hudSlotY, t.String(), core.FontSmall, timerColor(t))
			x += 10
		}
		h.power = mask
	}

	if !h.valid || s.player.Lives != h.lives {
		dst.FillRect(withHeight(hudLifeRegion, hudH), core.ColorBlack)
		for i := range s.cfg.Player.MaxLives {
			c := core.ColorDimRed
			if i < s.player.Lives {
				c = core.ColorRed
			}
			dst.FillRect(core.NewRect(204+i*12, hudSlotY, 8, 8), c)
		}
		h.lives = s.player.Lives
	}

	h.valid = true
}

func timerColor(t Timer) core.Color {
	switch t {
	case TimerFreeze:
		return core.ColorBlue
	case TimerHoming:
		return core.ColorOrange
	case TimerLaser:
		return core.ColorTeal
	default:
		return core.ColorWhite
	}
}

func withHeight(r core.Rect, h int) core.Rect {
	r.H = h
	return r
}
