package sim

// RNG is a seeded splitmix64 generator. Runs replay exactly from the same
// seed, which the tests rely on.
type RNG struct {
	state uint64
}

// NewRNG creates a generator for seed. Any seed, zero included, is valid.
func NewRNG(seed int64) *RNG {
	return &RNG{state: uint64(seed)} //#nosec G115 -- bit pattern only
}

func (r *RNG) next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Jitter returns a value in [-amp/2, amp/2).
func (r *RNG) Jitter(amp float64) float64 {
	return (r.Float64() - 0.5) * amp
}
