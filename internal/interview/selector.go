package interview

import (
	"math/rand/v2"

	"github.com/abhisek/intervue/internal/bank"
)

// Selector draws unused questions from a pool, preferring a target
// difficulty but falling back to any unused question so the interview can
// continue as long as the pool has anything left.
type Selector struct {
	pool *bank.Pool
	rng  *rand.Rand
}

// NewSelector creates a Selector. A nil rng gets a fresh PCG source; tests
// inject a seeded one for deterministic draws.
func NewSelector(pool *bank.Pool, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{pool: pool, rng: rng}
}

// Next picks one unused question uniformly at random, preferring target
// difficulty. Returns nil when every question id is excluded — the expected
// pool-exhausted terminal condition, not an error.
func (s *Selector) Next(target bank.Difficulty, excluded map[string]bool) *bank.Question {
	if q := s.pick(s.pool.AtDifficulty(target), excluded); q != nil {
		return q
	}
	return s.pick(s.pool.Questions(), excluded)
}

func (s *Selector) pick(candidates []bank.Question, excluded map[string]bool) *bank.Question {
	available := candidates[:0]
	for _, q := range candidates {
		if !excluded[q.ID] {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		return nil
	}
	q := available[s.rng.IntN(len(available))]
	return &q
}
