// Package dice provides the randomness capability used by every game component.
//
// Nothing in the game reaches for a package-level random generator. Each
// component receives a Source when it is constructed, so combat math can be
// replayed exactly under test with a Script.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEmptyRange indicates a roll was requested over a range with no values.
var ErrEmptyRange = errors.New("empty roll range")

// Source maps a closed integer range to a value and a choice set to an index.
type Source interface {
	// Between returns an integer in [lo, hi] inclusive.
	Between(lo, hi int) (int, error)
	// Pick returns an index in [0, n). n must be positive.
	Pick(n int) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// NewRand creates a Source from a seed.
// A seed of 0 means the current time is used.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with, for reproducing a run.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Between returns a uniform integer in [lo, hi].
func (r *Rand) Between(lo, hi int) (int, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	return lo + r.rng.Intn(hi-lo+1), nil
}

// Pick returns a uniform index in [0, n).
func (r *Rand) Pick(n int) int {
	return r.rng.Intn(n)
}

// Coin flips a fair coin: true when the first of two choices comes up.
func Coin(src Source) bool {
	return src.Pick(2) == 0
}

// Choose returns a uniformly chosen element of items.
// It panics if items is empty, like indexing an empty slice would.
func Choose[T any](src Source, items []T) T {
	return items[src.Pick(len(items))]
}

func checkRange(lo, hi int) error {
	if hi < lo {
		return fmt.Errorf("[%d, %d]: %w", lo, hi, ErrEmptyRange)
	}
	return nil
}
