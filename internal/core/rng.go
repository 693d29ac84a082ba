package core

import (
	"hash/fnv"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding from arbitrary strings.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed string. Equal
// strings always yield the same stream.
func NewRNG(seed string) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(HashSeed(seed)))}
}

// HashSeed folds a seed string into the two PCG state words.
func HashSeed(seed string) (uint64, uint64) {
	a := fnv.New64a()
	a.Write([]byte(seed))
	b := fnv.New64()
	b.Write([]byte(seed))
	return a.Sum64(), b.Sum64()
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

const seedAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomSeed returns n random alphanumeric characters from the global,
// non-deterministic source.
func RandomSeed(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = seedAlphabet[rand.IntN(len(seedAlphabet))]
	}
	return string(buf)
}
