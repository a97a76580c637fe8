package game

import (
	"fmt"
	mathrand "math/rand"

	"github.com/google/uuid"
)

// IDGenerator stamps entities with prefix-tagged opaque identifiers such as
// "bid_<token>" or "contract_<token>".
type IDGenerator interface {
	Next(prefix string) string
}

// RandomIDs draws tokens from crypto-random UUIDs
type RandomIDs struct{}

// NewRandomIDs returns the default, non-reproducible generator
func NewRandomIDs() RandomIDs {
	return RandomIDs{}
}

func (RandomIDs) Next(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// SeededIDs draws UUIDs from a seeded reader, so a replay with the same seed
// produces the same identifiers in the same order.
type SeededIDs struct {
	rng *mathrand.Rand
}

// NewSeededIDs returns a reproducible generator
func NewSeededIDs(seed int64) *SeededIDs {
	return &SeededIDs{rng: mathrand.New(mathrand.NewSource(seed))}
}

func (s *SeededIDs) Next(prefix string) string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// math/rand readers never fail
		panic(err)
	}
	return prefix + "_" + id.String()
}

// SequentialIDs numbers entities per prefix: bid_1, bid_2, trick_1...
type SequentialIDs struct {
	counters map[string]int
}

// NewSequentialIDs returns a readable generator, handy in tests
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{counters: map[string]int{}}
}

func (s *SequentialIDs) Next(prefix string) string {
	s.counters[prefix]++
	return fmt.Sprintf("%s_%d", prefix, s.counters[prefix])
}
