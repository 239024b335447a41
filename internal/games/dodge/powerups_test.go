package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func TestTimerBank(t *testing.T) {
	var b TimerBank
	b.Set(TimerFreeze, 2)
	b.Set(TimerShield, 1)

	if !b.Active(TimerFreeze) || b.Active(TimerHoming) {
		t.Fatal("only set timers should be active")
	}
	if got := b.Mask(); got != 0b1001 {
		t.Errorf("Mask = %04b, want 1001", got)
	}

	b.Tick()
	if b.Remaining(TimerFreeze) != 1 || b.Active(TimerShield) {
		t.Errorf("after one tick: freeze=%d shield=%d", b.Remaining(TimerFreeze), b.Remaining(TimerShield))
	}

	// Saturates at zero
	for range 5 {
		b.Tick()
	}
	for tm := range timerCount {
		if b.Remaining(tm) != 0 {
			t.Errorf("timer %s = %d, want 0", tm, b.Remaining(tm))
		}
	}
	if b.Mask() != 0 {
		t.Error("mask should be empty")
	}
}

func TestTimerBankRestartAndReset(t *testing.T) {
	var b TimerBank
	b.Set(TimerLaser, 3)
	b.Tick()
	b.Set(TimerLaser, 10)
	if b.Remaining(TimerLaser) != 10 {
		t.Errorf("re-grant should restart the timer, got %d", b.Remaining(TimerLaser))
	}

	b.Set(TimerHoming, -5)
	if b.Remaining(TimerHoming) != 0 {
		t.Error("negative durations clamp to zero")
	}

	b.Reset()
	if b.Mask() != 0 {
		t.Error("Reset should stop every timer")
	}
	if b.Remaining(Timer(42)) != 0 || b.Active(Timer(-1)) {
		t.Error("unknown timers are never active")
	}
}

// Timers tick once per Playing tick even when idle.
func TestTimersTickEveryPlayingTick(t *testing.T) {
	s := playingSession(t)
	s.timers.Set(TimerFreeze, 5)
	s.timers.Set(TimerHoming, 5)
	s.timers.Set(TimerLaser, 5)
	s.timers.Set(TimerShield, 5)

	for range 3 {
		s.Step(idle())
	}
	for tm := range timerCount {
		if got := s.timers.Remaining(tm); got != 2 {
			t.Errorf("timer %s = %d, want 2", tm, got)
		}
	}
}

func TestGrant(t *testing.T) {
	pc := config.DefaultDodgeConfig().PowerUps
	tests := []struct {
		name      string
		p         PowerUp
		lives     int
		bombs     int
		wantLives int
		wantBombs int
		wantTimer Timer
		wantTicks int
	}{
		{"bomb", PowerBomb, 3, 1, 3, 2, -1, 0},
		{"bomb capped", PowerBomb, 3, 3, 3, 3, -1, 0},
		{"life", PowerLife, 1, 0, 2, 0, -1, 0},
		{"life capped", PowerLife, 3, 0, 3, 0, -1, 0},
		{"freeze", PowerFreeze, 3, 0, 3, 0, TimerFreeze, pc.FreezeTicks},
		{"homing", PowerHoming, 3, 0, 3, 0, TimerHoming, pc.HomingTicks},
		{"laser", PowerLaser, 3, 0, 3, 0, TimerLaser, pc.LaserTicks},
		{"shield", PowerShield, 3, 0, 3, 0, TimerShield, pc.ShieldTicks},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playingSession(t)
			s.player.Lives = tc.lives
			s.player.Bombs = tc.bombs

			s.grant(tc.p)

			if s.player.Lives != tc.wantLives || s.player.Bombs != tc.wantBombs {
				t.Errorf("lives/bombs = %d/%d, want %d/%d",
					s.player.Lives, s.player.Bombs, tc.wantLives, tc.wantBombs)
			}
			if tc.wantTimer >= 0 {
				if got := s.timers.Remaining(tc.wantTimer); got != tc.wantTicks {
					t.Errorf("timer %s = %d, want %d", tc.wantTimer, got, tc.wantTicks)
				}
				if s.timers.Mask() != 1<<tc.wantTimer {
					t.Errorf("Mask = %04b, only %s should run", s.timers.Mask(), tc.wantTimer)
				}
			} else if s.timers.Mask() != 0 {
				t.Errorf("no timer expected, mask %04b", s.timers.Mask())
			}
		})
	}
}

func TestFreezeClearsDangerBand(t *testing.T) {
	s := playingSession(t)
	py, oh := s.cfg.Player.Y, s.cfg.Obstacles.Height
	limit := py - s.cfg.PowerUps.FreezeClearMargin

	s.pools.SpawnObstacle(10, limit-oh)   // bottom exactly on the band edge
	s.pools.SpawnObstacle(40, limit-oh-1) // just above
	s.pools.SpawnObstacle(70, py)         // level with the ship
	s.score = 7

	s.grant(PowerFreeze)

	if s.pools.Obstacles[0].Active {
		t.Error("obstacle touching the band should be cleared")
	}
	if !s.pools.Obstacles[1].Active {
		t.Error("obstacle above the band should stay")
	}
	if s.pools.Obstacles[2].Active {
		t.Error("obstacle at the player row should be cleared")
	}
	if s.score != 7 {
		t.Errorf("freeze clear should not score, got %d", s.score)
	}
	if got := s.pools.LiveParticles(); got != 2*s.cfg.Particles.FreezeBurst {
		t.Errorf("particles = %d, want %d", got, 2*s.cfg.Particles.FreezeBurst)
	}
}

func TestFreezeStopsObstacles(t *testing.T) {
	s := playingSession(t)
	s.timers.Set(TimerFreeze, 10)
	s.pools.SpawnObstacle(100, 50)

	s.Step(idle())
	if y := s.pools.Obstacles[0].Y; y != 50 {
		t.Errorf("frozen obstacle moved to %d", y)
	}
}

func TestPowerUpString(t *testing.T) {
	want := []string{"bomb+1", "life+1", "freeze", "homing", "laser", "shield"}
	for p := range powerUpCount {
		if got := p.String(); got != want[p] {
			t.Errorf("PowerUp(%d) = %q, want %q", p, got, want[p])
		}
	}
	letters := "FHLS"
	for tm := range timerCount {
		if got := tm.String(); got != string(letters[tm]) {
			t.Errorf("Timer(%d) = %q, want %q", tm, got, string(letters[tm]))
		}
	}
}
