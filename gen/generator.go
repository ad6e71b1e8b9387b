// Package gen produces the randomized integer multisets that the
// properties are checked against.
//
// A Generator is fully determined by its seed, so a sweep can be replayed
// bit-for-bit from the seed printed in its report. Auxiliary samples (which
// element to query, which element to remove) are pure functions of the case
// itself, so a single logged case is enough to reproduce a failing trial.
package gen

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"

	"github.com/gravitational/trace"
)

// Default bounds for generated cases. The value range is kept narrow so
// that duplicates occur in nearly every case, which is what exercises the
// deduplication logic in the candidates.
const (
	MinLen   = 3
	MaxLen   = 200
	MinValue = -10
	MaxValue = 10
)

// Number of attempts at producing a non-empty case before giving up.
const maxRetries = 100

// ErrExhausted is returned when generation cannot produce a valid non-empty
// case within the retry budget. It indicates a misconfigured generator and
// is a harness-level fault, not a candidate failure.
var ErrExhausted = trace.LimitExceeded("case generation exhausted its retry budget without producing a non-empty case")

// A Case is one generated multiset. It is immutable once generated.
type Case []int

// Generator produces Cases from a seeded source.
type Generator struct {
	rand *rand.Rand

	minLen, maxLen     int
	minValue, maxValue int
}

// New creates a Generator with the default bounds.
//
// The seed fully determines the sequence of generated cases.
func New(seed int64) *Generator {
	return &Generator{
		rand:     rand.New(rand.NewSource(seed)),
		minLen:   MinLen,
		maxLen:   MaxLen,
		minValue: MinValue,
		maxValue: MaxValue,
	}
}

// NewWithBounds creates a Generator producing cases with lengths in
// [minLen, maxLen] and values in [minValue, maxValue]. Used by tests to
// shrink the search space.
func NewWithBounds(seed int64, minLen, maxLen, minValue, maxValue int) (*Generator, error) {
	if minLen > maxLen {
		return nil, trace.BadParameter("invalid length bounds [%v, %v]", minLen, maxLen)
	}
	if minLen < 0 {
		return nil, trace.BadParameter("negative minimum length %v", minLen)
	}
	if minValue > maxValue {
		return nil, trace.BadParameter("invalid value bounds [%v, %v]", minValue, maxValue)
	}
	return &Generator{
		rand:     rand.New(rand.NewSource(seed)),
		minLen:   minLen,
		maxLen:   maxLen,
		minValue: minValue,
		maxValue: maxValue,
	}, nil
}

// Next returns a fresh non-empty Case.
//
// Properties are defined only over non-empty cases, since every property
// samples an existing element. Empty candidates from the source are
// discarded and regenerated; after maxRetries discards Next returns
// ErrExhausted.
func (g *Generator) Next() (Case, error) {
	for i := 0; i < maxRetries; i++ {
		n := g.minLen + g.rand.Intn(g.maxLen-g.minLen+1)
		if n == 0 {
			continue
		}
		c := make(Case, n)
		for j := range c {
			c[j] = g.minValue + g.rand.Intn(g.maxValue-g.minValue+1)
		}
		return c, nil
	}
	return nil, ErrExhausted
}

// Pick returns an element of c, selected deterministically from c's own
// content. c must be non-empty.
func (c Case) Pick() int {
	return c[int(c.digest(0)%uint64(len(c)))]
}

// PickFrom returns an element of vs, selected deterministically by c. Used
// when the sample space is derived from the case (such as its deduplicated
// view) rather than being the case itself. vs must be non-empty.
func (c Case) PickFrom(vs []int) int {
	return vs[int(c.digest(1)%uint64(len(vs)))]
}

// Max returns the largest element of c. c must be non-empty.
func (c Case) Max() int {
	m := c[0]
	for _, v := range c[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// digest hashes the case content. The salt separates the sample streams so
// that Pick and PickFrom do not always land on related positions.
func (c Case) digest(salt byte) uint64 {
	h := fnv.New64a()
	h.Write([]byte{salt})
	var buf [8]byte
	for _, v := range c {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	return h.Sum64()
}
