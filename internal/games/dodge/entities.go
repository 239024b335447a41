package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Obstacle falls from the top of the play field.
type Obstacle struct {
	X, Y   int
	Active bool
}

// Missile travels upward from the ship.
type Missile struct {
	X, Y   int
	Active bool
	Homing bool // Fixed at launch
}

// Particle is cosmetic debris. Life 0 means the slot is free.
type Particle struct {
	X, Y   int
	DX, DY int
	Life   int
}

// Gift is a falling power-up pickup. Life doubles as lifetime and fade trigger.
type Gift struct {
	X, Y   int
	Life   int
	Active bool
}

// Pools holds the fixed-capacity entity arenas. Slices are allocated once
// and never grow; spawning scans for the first free slot and silently
// drops the spawn when none is left. Capacities are single digits, so the
// linear scan is all that is needed.
type Pools struct {
	Obstacles []Obstacle
	Missiles  []Missile
	Particles []Particle
	Gifts     []Gift
}

// NewPools allocates arenas with the given capacities.
func NewPools(obstacles, missiles, particles, gifts int) Pools {
	return Pools{
		Obstacles: make([]Obstacle, obstacles),
		Missiles:  make([]Missile, missiles),
		Particles: make([]Particle, particles),
		Gifts:     make([]Gift, gifts),
	}
}

// Clear frees every slot.
func (p *Pools) Clear() {
	clear(p.Obstacles)
	clear(p.Missiles)
	clear(p.Particles)
	clear(p.Gifts)
}

// FreeObstacle returns the first free obstacle slot, or -1 when full.
func (p *Pools) FreeObstacle() int {
	for i := range p.Obstacles {
		if !p.Obstacles[i].Active {
			return i
		}
	}
	return -1
}

// SpawnObstacle places an obstacle in the first free slot.
func (p *Pools) SpawnObstacle(x, y int) bool {
	i := p.FreeObstacle()
	if i < 0 {
		return false
	}
	p.Obstacles[i] = Obstacle{X: x, Y: y, Active: true}
	return true
}

// LaunchMissile places a missile in the first free slot.
func (p *Pools) LaunchMissile(x, y int, homing bool) bool {
	for i := range p.Missiles {
		if !p.Missiles[i].Active {
			p.Missiles[i] = Missile{X: x, Y: y, Active: true, Homing: homing}
			return true
		}
	}
	return false
}

// FreeGift returns the first free gift slot, or -1 when full.
func (p *Pools) FreeGift() int {
	for i := range p.Gifts {
		if !p.Gifts[i].Active {
			return i
		}
	}
	return -1
}

// SpawnGift places a gift in the first free slot.
func (p *Pools) SpawnGift(x, y, life int) bool {
	i := p.FreeGift()
	if i < 0 {
		return false
	}
	p.Gifts[i] = Gift{X: x, Y: y, Life: life, Active: true}
	return true
}

// Burst spawns up to count debris particles around (cx, cy).
// Particles that do not fit are dropped. Returns the number spawned.
func (p *Pools) Burst(rng *Rng, cx, cy, count, life int) int {
	spawned := 0
	for i := range p.Particles {
		if spawned >= count {
			break
		}
		pt := &p.Particles[i]
		if pt.Life != 0 {
			continue
		}
		pt.X = cx + rng.Range(10) - 5
		pt.Y = cy + rng.Range(10) - 5
		pt.DX = rng.Range(7) - 3
		pt.DY = rng.Range(7) - 3
		if pt.DX == 0 && pt.DY == 0 {
			pt.DY = -1
		}
		pt.Life = life
		spawned++
	}
	return spawned
}

// ActiveObstacles returns the number of live obstacles.
func (p *Pools) ActiveObstacles() int {
	n := 0
	for _, o := range p.Obstacles {
		if o.Active {
			n++
		}
	}
	return n
}

// ActiveMissiles returns the number of live missiles.
func (p *Pools) ActiveMissiles() int {
	n := 0
	for _, m := range p.Missiles {
		if m.Active {
			n++
		}
	}
	return n
}

// ActiveGifts returns the number of live gifts.
func (p *Pools) ActiveGifts() int {
	n := 0
	for _, g := range p.Gifts {
		if g.Active {
			n++
		}
	}
	return n
}

// LiveParticles returns the number of particles with life left.
func (p *Pools) LiveParticles() int {
	n := 0
	for _, pt := range p.Particles {
		if pt.Life > 0 {
			n++
		}
	}
	return n
}

// Geometry of the entity kinds, shared by collision, targeting and drawing.

func (s *Session) playerRect() core.Rect {
	return core.NewRect(s.player.X, s.cfg.Player.Y, s.cfg.Player.Width, s.cfg.Player.Height)
}

func (s *Session) obstacleRect(o Obstacle) core.Rect {
	return core.NewRect(o.X, o.Y, s.cfg.Obstacles.Width, s.cfg.Obstacles.Height)
}

func (s *Session) missileRect(m Missile) core.Rect {
	return core.NewRect(m.X, m.Y, s.cfg.Missiles.Width, s.cfg.Missiles.Height)
}

func (s *Session) giftRect(g Gift) core.Rect {
	return core.NewRect(g.X, g.Y, s.cfg.Gifts.Width, s.cfg.Gifts.Height)
}
