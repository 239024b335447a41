package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Collision passes run in a fixed order each Playing tick:
// missiles vs obstacles, missiles vs gifts, then player vs obstacles.
// Scans are missile-outer, target-inner and a missile stops at its first
// hit. When two missiles overlap the same target in one tick the
// lower-indexed missile claims it and the other flies on.

func (s *Session) missilesVsObstacles() {
	for mi := range s.pools.Missiles {
		m := &s.pools.Missiles[mi]
		if !m.Active {
			continue
		}
		mr := s.missileRect(*m)
		for oi := range s.pools.Obstacles {
			o := s.pools.Obstacles[oi]
			if !o.Active || !mr.Intersects(s.obstacleRect(o)) {
				continue
			}
			m.Active = false
			s.destroyObstacle(oi, s.cfg.Particles.HitBurst)
			break
		}
	}
}

func (s *Session) missilesVsGifts() {
	for mi := range s.pools.Missiles {
		m := &s.pools.Missiles[mi]
		if !m.Active {
			continue
		}
		mr := s.missileRect(*m)
		for gi := range s.pools.Gifts {
			g := &s.pools.Gifts[gi]
			if !g.Active || !mr.Intersects(s.giftRect(*g)) {
				continue
			}
			m.Active = false
			g.Active = false
			cx, cy := s.giftRect(*g).Center()
			s.pools.Burst(s.rng, cx, cy, s.cfg.Particles.GiftBurst, s.cfg.Particles.Life)
			s.grant(PowerUp(s.rng.Range(int(powerUpCount))))
			break
		}
	}
}

// playerVsObstacles applies ship damage. Protection is decided once, before
// the invincibility window counts down, so every obstacle overlapping an
// unprotected ship this tick costs a life. The scan stops when the last
// life is gone.
func (s *Session) playerVsObstacles() {
	shielded := s.timers.Active(TimerShield) || s.player.Invincible > 0
	s.player.Invincible = core.SatSub(s.player.Invincible, 1)
	if shielded {
		return
	}

	pr := s.playerRect()
	for oi := range s.pools.Obstacles {
		o := &s.pools.Obstacles[oi]
		if !o.Active || !pr.Intersects(s.obstacleRect(*o)) {
			continue
		}
		o.Active = false
		s.player.Lives = core.SatSub(s.player.Lives, 1)
		s.player.Invincible = s.cfg.Player.InvincibleTicks
		s.events.Info("hit", "lives", s.player.Lives)
		if s.player.Lives == 0 {
			s.transition(StateGameOver)
			break
		}
	}
}
