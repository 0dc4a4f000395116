// Package entropy supplies the dice: an injectable randomness Source, d100
// helpers and the per-visit roll log.
package entropy

import (
	"math/rand"
)

// Source is the randomness provider for every roll.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n > 0.
	Intn(n int) int
}

// RollD100 returns a uniform integer in [1, 100].
func RollD100(src Source) int {
	return src.Intn(100) + 1
}

// RollBetween returns a uniform integer in [lo, hi].
func RollBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Choose returns a uniform index in [0, n).
func Choose(src Source, n int) int {
	if n <= 1 {
		return 0
	}
	return src.Intn(n)
}

// NewSeeded returns a deterministic math/rand source. It is not safe for
// concurrent use; give each visit its own.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	return int(cryptoRandFloat() * float64(n))
}

// Crypto returns a source backed by crypto/rand.
func Crypto() Source {
	return cryptoSource{}
}

// Sequence replays scripted d100 values. Each Intn(n) consumes one value v
// and returns (v-1) mod n, so a scripted 34 is a RollD100 of 34 and, for a
// three-way Choose, index 0. Once exhausted the sequence starts over.
type Sequence struct {
	values []int
	next   int
}

// NewSequence scripts the given d100 values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value folded into [0, n).
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	r := (v - 1) % n
	if r < 0 {
		r += n
	}
	return r
}

// Used reports how many values have been consumed.
func (s *Sequence) Used() int {
	return s.next
}
