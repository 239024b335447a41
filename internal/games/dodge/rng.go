package dodge

// Rng is a 32-bit xorshift generator (shifts 13/17/5).
// It is deterministic for a given seed, which keeps whole sessions
// reproducible. Not suitable for anything beyond gameplay.
type Rng struct {
	state uint32
}

// NewRng creates a generator. A zero seed is remapped to 1 because zero
// is a fixed point of xorshift.
func NewRng(seed uint32) *Rng {
	r := &Rng{}
	r.Reseed(seed)
	return r
}

// Reseed restarts the sequence from seed.
func (r *Rng) Reseed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

// Next returns the next 32-bit value.
func (r *Rng) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Range returns a value in [0, n) as next() mod n.
// The small modulo bias is accepted. Range returns 0 when n <= 0.
func (r *Rng) Range(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n)) //#nosec G115 -- n is a small positive field dimension
}

// State returns the internal state word, for snapshots.
func (r *Rng) State() uint32 {
	return r.state
}
