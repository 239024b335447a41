package dodge

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// beam is the laser shot of the current tick, kept for drawing.
type beam struct {
	Hit            bool
	X0, Y0, X1, Y1 int
}

// nearestObstacle returns the index of the active obstacle whose centre is
// closest to (x, y) by Manhattan distance. Ties go to the lower index.
func (s *Session) nearestObstacle(x, y int) (int, bool) {
	best, idx := math.MaxInt, -1
	for i, o := range s.pools.Obstacles {
		if !o.Active {
			continue
		}
		cx, cy := s.obstacleRect(o).Center()
		if d := core.Abs(cx-x) + core.Abs(cy-y); d < best {
			best, idx = d, i
		}
	}
	return idx, idx >= 0
}

// destroyObstacle removes obstacle i, awards hit points and spawns debris.
func (s *Session) destroyObstacle(i, burst int) {
	o := &s.pools.Obstacles[i]
	cx, cy := s.obstacleRect(*o).Center()
	s.pools.Burst(s.rng, cx, cy, burst, s.cfg.Particles.Life)
	o.Active = false
	s.score += s.cfg.Obstacles.HitPoints
}

// detonateBomb spends a charge to clear the field and resets the
// difficulty baseline. Without charges it does nothing.
func (s *Session) detonateBomb() {
	if s.player.Bombs <= 0 {
		return
	}
	s.player.Bombs--
	cleared := 0
	for i := range s.pools.Obstacles {
		if s.pools.Obstacles[i].Active {
			s.destroyObstacle(i, s.cfg.Particles.BombBurst)
			cleared++
		}
	}
	s.baseline = s.score
	s.events.Info("bomb", "cleared", cleared, "left", s.player.Bombs, "score", s.score)
}

// fireLaser destroys the obstacle nearest to the ship's nose instantly.
func (s *Session) fireLaser() {
	px, py := s.player.X+s.cfg.Player.Width/2, s.cfg.Player.Y
	i, ok := s.nearestObstacle(px, py)
	if !ok {
		return
	}
	tx, ty := s.obstacleRect(s.pools.Obstacles[i]).Center()
	s.destroyObstacle(i, s.cfg.Particles.LaserBurst)
	s.beam = beam{Hit: true, X0: px, Y0: py, X1: tx, Y1: ty}
}

// fireMissiles launches from the requested sides of the ship.
func (s *Session) fireMissiles(c Controls) {
	mc := s.cfg.Missiles
	y := s.cfg.Player.Y - mc.Height
	homing := s.timers.Active(TimerHoming)
	if c.FireLeft {
		s.pools.LaunchMissile(s.player.X+2, y, homing)
	}
	if c.FireRight {
		s.pools.LaunchMissile(s.player.X+s.cfg.Player.Width-2-mc.Width, y, homing)
	}
}

// homingTurn returns the lateral correction for a homing missile that is
// dy pixels below its target and dx pixels to its side. The two close at
// closing pixels per tick; the turn spreads dx over the ticks left to
// intercept, nudges by at least one pixel while any offset remains and
// never exceeds maxTurn.
func homingTurn(dx, dy, closing, maxTurn int) int {
	frames := 1
	if closing > 0 {
		frames = max(1, dy/closing)
	}
	turn := dx / frames
	if turn == 0 && dx != 0 {
		turn = core.Sign(dx)
	}
	return core.Clamp(turn, -maxTurn, maxTurn)
}

// moveMissiles advances missiles upward and steers homing ones.
// speed is the obstacle fall speed for this tick.
func (s *Session) moveMissiles(speed int) {
	mc := s.cfg.Missiles
	for i := range s.pools.Missiles {
		m := &s.pools.Missiles[i]
		if !m.Active {
			continue
		}
		m.Y -= mc.Speed
		if m.Homing {
			mx := m.X + mc.Width/2
			tx, ty := mx, m.Y
			if j, ok := s.nearestObstacle(mx, m.Y); ok {
				tx, ty = s.obstacleRect(s.pools.Obstacles[j]).Center()
			}
			m.X += homingTurn(tx-mx, m.Y-ty, mc.Speed+speed, mc.MaxTurn)
		}
		if m.Y < s.cfg.Field.HUDHeight {
			m.Active = false
		}
	}
}
