package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// updatePlaying runs one Playing tick. Any press during a demo returns to
// the title screen and skips the rest of the tick.
func (s *Session) updatePlaying(in core.InputFrame, e core.Edges) {
	if s.demo && e.Any() {
		s.transition(StateTitle)
		return
	}
	s.playTicks++
	s.beam = beam{}

	var c Controls
	if s.demo {
		c = DemoPolicy(s.demoView())
	} else {
		c = HumanControls(in, e)
	}

	s.movePlayer(c)
	if c.Bomb {
		s.detonateBomb()
	}

	// The laser replaces missile fire while it is running and held
	if s.timers.Active(TimerLaser) && c.FireHeld {
		s.fireLaser()
	} else {
		s.fireMissiles(c)
	}

	progress := s.difficulty.Progress(s.score, s.baseline)
	speed := s.difficulty.Speed(progress, s.timers.Active(TimerFreeze))

	s.spawnObstacle(progress)
	s.moveObstacles(speed)
	s.spawnGift()
	s.moveGifts()
	s.moveMissiles(speed)
	s.moveParticles()

	s.missilesVsObstacles()
	s.missilesVsGifts()
	s.playerVsObstacles()

	s.timers.Tick()
}

func (s *Session) movePlayer(c Controls) {
	pc := s.cfg.Player
	if c.Left {
		s.player.X = max(0, s.player.X-pc.Speed)
	}
	if c.Right {
		s.player.X = min(s.cfg.Field.Width-pc.Width, s.player.X+pc.Speed)
	}
}

func (s *Session) spawnObstacle(progress int) {
	s.spawnTimer++
	if s.spawnTimer < s.difficulty.SpawnInterval(progress) {
		return
	}
	s.spawnTimer = 0
	// A dropped spawn must not consume randomness
	if s.pools.FreeObstacle() < 0 {
		return
	}
	x := s.rng.Range(s.cfg.Field.Width - s.cfg.Obstacles.Width)
	s.pools.SpawnObstacle(x, s.cfg.Field.HUDHeight)
}

// moveObstacles drops obstacles by speed. One that falls off the bottom
// counts as dodged.
func (s *Session) moveObstacles(speed int) {
	for i := range s.pools.Obstacles {
		o := &s.pools.Obstacles[i]
		if !o.Active {
			continue
		}
		o.Y += speed
		if o.Y > s.cfg.Field.Height {
			o.Active = false
			s.score += s.cfg.Obstacles.DodgePoints
		}
	}
}

func (s *Session) spawnGift() {
	gc := s.cfg.Gifts
	s.giftTimer++
	if s.giftTimer < gc.SpawnTicks || s.rng.Range(100) >= gc.SpawnChance {
		return
	}
	s.giftTimer = 0
	if s.pools.FreeGift() < 0 {
		return
	}
	x := s.rng.Range(s.cfg.Field.Width - gc.Width)
	s.pools.SpawnGift(x, s.cfg.Field.HUDHeight, gc.Life)
}

// moveGifts drops gifts and expires them when their life runs out.
func (s *Session) moveGifts() {
	for i := range s.pools.Gifts {
		g := &s.pools.Gifts[i]
		if !g.Active {
			continue
		}
		g.Y += s.cfg.Gifts.Speed
		g.Life = core.SatSub(g.Life, 1)
		if g.Life == 0 {
			g.Active = false
		}
	}
}

func (s *Session) moveParticles() {
	for i := range s.pools.Particles {
		p := &s.pools.Particles[i]
		if p.Life == 0 {
			continue
		}
		p.X += p.DX
		p.Y += p.DY
		p.Life--
	}
}
