package balancer

import (
	"math/rand/v2"

	"party-lab/domain"
)

// shuffleStream is the fixed PCG stream; only the seed varies between requests.
const shuffleStream = 0x9e3779b97f4a7c15

// Shuffled deals a seeded random permutation of the roster.
// The same seed and roster always produce the same parties.
type Shuffled struct {
	seed uint64
}

var _ Strategy = (*Shuffled)(nil)

func NewShuffled(seed uint64) *Shuffled {
	return &Shuffled{seed: seed}
}

func (s *Shuffled) Name() string {
	return StrategyRandom
}

func (s *Shuffled) Assign(characters []domain.Character, cfg Config) (Result, error) {
	sorted, k, err := prepare(characters, cfg)
	if err != nil {
		return Result{}, err
	}
	if len(sorted) == 0 {
		return emptyResult(s.Name()), nil
	}

	rng := rand.New(rand.NewPCG(s.seed, shuffleStream))
	rng.Shuffle(len(sorted), func(i, j int) {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	})

	buckets := deal(sorted, k)
	spread := Spread(buckets)
	return Result{
		Parties: finalize(buckets),
		Stats: Stats{
			Strategy:    s.Name(),
			Characters:  len(sorted),
			Parties:     k,
			SeedSpread:  spread,
			FinalSpread: spread,
		},
	}, nil
}
