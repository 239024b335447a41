package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Scenario E: bomb with two obstacles and one charge.
func TestBombClearsField(t *testing.T) {
	s := playingSession(t)
	s.player.Bombs = 1
	s.score = 10
	s.pools.SpawnObstacle(20, 40)
	s.pools.SpawnObstacle(150, 90)

	s.detonateBomb()

	if n := s.pools.ActiveObstacles(); n != 0 {
		t.Errorf("active obstacles = %d, want 0", n)
	}
	if s.score != 14 {
		t.Errorf("score = %d, want 14", s.score)
	}
	if s.player.Bombs != 0 {
		t.Errorf("bombs = %d, want 0", s.player.Bombs)
	}
	if s.baseline != 14 {
		t.Errorf("baseline = %d, want 14", s.baseline)
	}
	if got := s.difficulty.Progress(s.score, s.baseline); got != 0 {
		t.Errorf("progress after bomb = %d, want 0", got)
	}
	if got := s.pools.LiveParticles(); got != 2*s.cfg.Particles.BombBurst {
		t.Errorf("particles = %d, want %d", got, 2*s.cfg.Particles.BombBurst)
	}
}

func TestBombWithoutChargesDoesNothing(t *testing.T) {
	s := playingSession(t)
	s.player.Bombs = 0
	s.score = 30
	s.pools.SpawnObstacle(20, 40)

	s.detonateBomb()

	if s.pools.ActiveObstacles() != 1 || s.score != 30 || s.baseline != 0 {
		t.Error("bomb without charges must not change anything")
	}
}

func TestBombChordThroughStep(t *testing.T) {
	s := playingSession(t)
	s.pools.SpawnObstacle(20, 40)
	s.pools.SpawnObstacle(60, 40)

	s.Step(core.NewInputFrame(core.ButtonA))                // fire left
	s.Step(core.NewInputFrame(core.ButtonA, core.ButtonX)) // X completes the chord

	if s.player.Bombs != s.cfg.Player.MaxBombs-1 {
		t.Errorf("bombs = %d, want one spent", s.player.Bombs)
	}
	if s.pools.ActiveObstacles() != 0 {
		t.Error("chord should have cleared the field")
	}
	if s.baseline != s.score {
		t.Errorf("baseline = %d, want score %d", s.baseline, s.score)
	}
}

func TestLaserDestroysNearest(t *testing.T) {
	s := playingSession(t)
	px := s.player.X + s.cfg.Player.Width/2
	s.pools.SpawnObstacle(10, 30)     // far
	s.pools.SpawnObstacle(px-6, 100)  // straight above, closest
	s.pools.SpawnObstacle(px+40, 100) // off to the side

	s.fireLaser()

	if s.pools.Obstacles[1].Active {
		t.Error("nearest obstacle should be destroyed")
	}
	if !s.pools.Obstacles[0].Active || !s.pools.Obstacles[2].Active {
		t.Error("only one obstacle per tick")
	}
	if s.score != 2 {
		t.Errorf("score = %d, want 2", s.score)
	}
	want := beam{Hit: true, X0: px, Y0: s.cfg.Player.Y, X1: px, Y1: 104}
	if s.beam != want {
		t.Errorf("beam = %+v, want %+v", s.beam, want)
	}
}

func TestLaserWithoutTargets(t *testing.T) {
	s := playingSession(t)
	s.fireLaser()
	if s.beam.Hit || s.score != 0 {
		t.Error("laser with no obstacles should do nothing")
	}
}

func TestLaserReplacesMissiles(t *testing.T) {
	s := playingSession(t)
	s.timers.Set(TimerLaser, 10)
	s.pools.SpawnObstacle(50, 40)

	s.Step(core.NewInputFrame(core.ButtonA))

	if s.pools.ActiveMissiles() != 0 {
		t.Error("no missiles while the laser is firing")
	}
	if s.pools.ActiveObstacles() != 0 {
		t.Error("laser should have destroyed the obstacle")
	}

	// Laser running but no fire control held: missiles are back, nothing fires
	s.pools.SpawnObstacle(50, 40)
	s.Step(idle())
	if s.pools.ActiveObstacles() != 1 {
		t.Error("laser needs a held fire control")
	}
}

func TestFireMissilesFromBothSides(t *testing.T) {
	s := playingSession(t)
	s.fireMissiles(Controls{FireLeft: true, FireRight: true})

	mc, pc := s.cfg.Missiles, s.cfg.Player
	left, right := s.pools.Missiles[0], s.pools.Missiles[1]
	if !left.Active || left.X != s.player.X+2 || left.Y != pc.Y-mc.Height {
		t.Errorf("left missile = %+v", left)
	}
	if !right.Active || right.X != s.player.X+pc.Width-2-mc.Width || right.Y != pc.Y-mc.Height {
		t.Errorf("right missile = %+v", right)
	}
	if left.Homing || right.Homing {
		t.Error("missiles fired without the homing timer must not home")
	}
}

func TestHomingFlagFixedAtLaunch(t *testing.T) {
	s := playingSession(t)
	s.timers.Set(TimerHoming, 1)
	s.fireMissiles(Controls{FireLeft: true})
	s.timers.Tick()
	s.fireMissiles(Controls{FireLeft: true})

	if !s.pools.Missiles[0].Homing {
		t.Error("missile fired with homing active should home")
	}
	if s.pools.Missiles[1].Homing {
		t.Error("missile fired after homing expired should not home")
	}

	// The flag survives the timer running out
	s.moveMissiles(2)
	if !s.pools.Missiles[0].Homing {
		t.Error("homing flag must not be re-evaluated in flight")
	}
}

func TestMissilePoolFullDropsShot(t *testing.T) {
	s := playingSession(t)
	for range s.cfg.Missiles.Capacity + 3 {
		s.fireMissiles(Controls{FireLeft: true})
	}
	if got := s.pools.ActiveMissiles(); got != s.cfg.Missiles.Capacity {
		t.Errorf("active missiles = %d, want capacity %d", got, s.cfg.Missiles.Capacity)
	}
}

func TestHomingTurn(t *testing.T) {
	tests := []struct {
		name                   string
		dx, dy, closing, limit int
		want                   int
	}{
		{"spread over intercept", 10, 40, 6, 6, 1},
		{"larger offset", 30, 30, 6, 6, 6},
		{"nudge right", 3, 100, 6, 6, 1},
		{"nudge left", -3, 100, 6, 6, -1},
		{"aligned", 0, 50, 6, 6, 0},
		{"clamped", 100, 0, 6, 6, 6},
		{"clamped left", -100, 0, 6, 6, -6},
		{"target below", 5, -20, 6, 6, 5},
		{"frozen closing", 12, 40, 4, 6, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := homingTurn(tc.dx, tc.dy, tc.closing, tc.limit); got != tc.want {
				t.Errorf("homingTurn(%d, %d, %d, %d) = %d, want %d",
					tc.dx, tc.dy, tc.closing, tc.limit, got, tc.want)
			}
		})
	}
}

func TestHomingMissileSteersToNearest(t *testing.T) {
	s := playingSession(t)
	s.pools.SpawnObstacle(150, 30)
	s.pools.LaunchMissile(100, 100, true)
	s.pools.LaunchMissile(100, 100, false)

	s.moveMissiles(2)

	homing, plain := s.pools.Missiles[0], s.pools.Missiles[1]
	if homing.Y != 96 || plain.Y != 96 {
		t.Fatalf("missiles should climb by speed: %d, %d", homing.Y, plain.Y)
	}
	// Missile centre 101, target centre (156, 34): dy=62, frames=10, turn=55/10=5
	if homing.X != 105 {
		t.Errorf("homing X = %d, want 105", homing.X)
	}
	if plain.X != 100 {
		t.Errorf("plain missile drifted to %d", plain.X)
	}
}

func TestMissileLeavesAtHUD(t *testing.T) {
	s := playingSession(t)
	hud := s.cfg.Field.HUDHeight
	s.pools.LaunchMissile(50, hud+s.cfg.Missiles.Speed, false)
	s.pools.LaunchMissile(60, hud+s.cfg.Missiles.Speed-1, false)

	s.moveMissiles(2)

	if !s.pools.Missiles[0].Active {
		t.Error("missile exactly at the HUD line stays")
	}
	if s.pools.Missiles[1].Active {
		t.Error("missile above the HUD line should be removed")
	}
}
