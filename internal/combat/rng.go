package combat

// RNG is the only source of randomness the combat core uses. It is always
// supplied by the caller; *math/rand.Rand satisfies it.
type RNG interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// rollPercent draws a uniform int in [1, 100].
func rollPercent(rng RNG) int {
	return rng.Intn(100) + 1
}
