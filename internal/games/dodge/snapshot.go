package dodge

// Snapshot is the observable state of a session.
// Uses primitive types only so it can be compared and hashed.
type Snapshot struct {
	State     State
	Demo      bool
	Frame     uint32
	Score     int
	HighScore int
	Baseline  int
	Progress  int

	PlayerX    int
	Lives      int
	Bombs      int
	Invincible int

	Freeze int
	Homing int
	Laser  int
	Shield int

	Obstacles int // Active counts per pool
	Missiles  int
	Gifts     int
	Particles int

	// Obstacle positions, each obstacle is 3 ints: X, Y, Active
	ObstacleData []int

	SpawnTimer int
	GiftTimer  int
	RNGState   uint32
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacleData := make([]int, len(s.pools.Obstacles)*3)
	for i, o := range s.pools.Obstacles {
		idx := i * 3
		obstacleData[idx] = o.X
		obstacleData[idx+1] = o.Y
		if o.Active {
			obstacleData[idx+2] = 1
		}
	}

	return Snapshot{
		State:     s.state,
		Demo:      s.demo,
		Frame:     s.frame,
		Score:     s.score,
		HighScore: s.highScore,
		Baseline:  s.baseline,
		Progress:  s.difficulty.Progress(s.score, s.baseline),

		PlayerX:    s.player.X,
		Lives:      s.player.Lives,
		Bombs:      s.player.Bombs,
		Invincible: s.player.Invincible,

		Freeze: s.timers.Remaining(TimerFreeze),
		Homing: s.timers.Remaining(TimerHoming),
		Laser:  s.timers.Remaining(TimerLaser),
		Shield: s.timers.Remaining(TimerShield),

		Obstacles: s.pools.ActiveObstacles(),
		Missiles:  s.pools.ActiveMissiles(),
		Gifts:     s.pools.ActiveGifts(),
		Particles: s.pools.LiveParticles(),

		ObstacleData: obstacleData,

		SpawnTimer: s.spawnTimer,
		GiftTimer:  s.giftTimer,
		RNGState:   s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Baseline)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bombs)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Invincible) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Freeze)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Homing)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Laser)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shield)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Missiles)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Gifts)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimer) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GiftTimer)  //#nosec G115 -- hash computation

	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.RNGState)
	if snap.Demo {
		h = h*31 + 1
	}
	return h
}
