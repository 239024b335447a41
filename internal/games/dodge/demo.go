package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// DemoView is the slice of session state the autoplay policy looks at.
type DemoView struct {
	PlayerX   int
	PlayerY   int
	PlayerW   int
	ObstacleW int
	Bombs     int
	Frame     uint32
	Obstacles []Obstacle
	Tuning    config.DemoConfig
}

// DemoPolicy decides the autoplay controls for one tick.
//
// It tracks the lowest active obstacle. When that obstacle is inside the
// danger band and horizontally over the ship it dodges away from it;
// otherwise it steers under it and fires alternately from each side once
// aligned. It also fires periodically regardless, and bombs when the
// field gets crowded.
func DemoPolicy(v DemoView) Controls {
	t := v.Tuning
	c := Controls{FireHeld: true}
	if t.FireEvery > 0 {
		c.FireRight = v.Frame%uint32(t.FireEvery) == 0 //#nosec G115 -- FireEvery is positive
	}

	count := 0
	nearestY := -1
	nearestX := 0
	for _, o := range v.Obstacles {
		if !o.Active {
			continue
		}
		count++
		if o.Y > nearestY {
			nearestY = o.Y
			nearestX = o.X + v.ObstacleW/2
		}
	}

	if count >= t.BombThreshold && v.Bombs > 0 {
		c.Bomb = true
	}
	if nearestY < 0 {
		return c
	}

	dx := nearestX - (v.PlayerX + v.PlayerW/2)
	switch {
	case nearestY > v.PlayerY-t.DangerBand && core.Abs(dx) < v.PlayerW+t.WidthMargin:
		if dx >= 0 {
			c.Left = true
		} else {
			c.Right = true
		}
	case dx > t.DeadZone:
		c.Right = true
	case dx < -t.DeadZone:
		c.Left = true
	default:
		c.FireLeft = v.Frame%2 == 0
		c.FireRight = v.Frame%2 != 0
	}
	return c
}

func (s *Session) demoView() DemoView {
	return DemoView{
		PlayerX:   s.player.X,
		PlayerY:   s.cfg.Player.Y,
		PlayerW:   s.cfg.Player.Width,
		ObstacleW: s.cfg.Obstacles.Width,
		Bombs:     s.player.Bombs,
		Frame:     s.frame,
		Obstacles: s.pools.Obstacles,
		Tuning:    s.cfg.Demo,
	}
}
