package random

import (
	"time"

	"github.com/cloudcopper/fixturegen/lib"
	"golang.org/x/exp/rand"
)

// Random is a seedable source of random choices.
// It is not safe for concurrent use.
type Random struct {
	seed uint64
	rand *rand.Rand
}

// New returns random source seeded with seed.
// The zero seed means seed from current time.
func New(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns effective seed of the source
func (r *Random) Seed() uint64 {
	return r.seed
}

// Value returns random value in range of [a[0],a[1]]
func (r *Random) Value(a []int) int {
	m, n := a[0], a[1]
	lib.Assert(m <= n, "invalid range [%d,%d]", m, n)
	return r.rand.Intn(n-m+1) + m
}

// Chance returns true with probability p
func (r *Random) Chance(p float64) bool {
	return r.rand.Float64() < p
}

// Element returns random element of a
func Element[T any](r *Random, a []T) T {
	return a[r.Value([]int{0, len(a) - 1})]
}
