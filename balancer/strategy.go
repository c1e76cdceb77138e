package balancer

import (
	"fmt"
	"slices"

	"party-lab/domain"
	"party-lab/errors"
)

const (
	StrategyBalanced = "balanced"
	StrategyClasses  = "classes"
	StrategyRandom   = "random"
	StrategySized    = "sized"
)

// Strategy partitions a roster into parties.
// Implementations are stateless and safe for concurrent use.
type Strategy interface {
	Name() string
	Assign(characters []domain.Character, cfg Config) (Result, error)
}

// Result is the outcome of one balancing request.
type Result struct {
	Parties []domain.Party
	Stats   Stats
}

// Stats describes how a result was reached.
type Stats struct {
	Strategy    string
	Characters  int
	Parties     int
	SeedSpread  int
	FinalSpread int
	Iterations  int
}

// NewStrategy resolves a strategy by name. An empty name selects the balanced strategy.
// The seed is only used by the random strategy.
func NewStrategy(name string, seed uint64) (Strategy, error) {
	switch name {
	case "", StrategyBalanced:
		return NewBalanced(), nil
	case StrategyClasses:
		return NewClassSpread(), nil
	case StrategyRandom:
		return NewShuffled(seed), nil
	case StrategySized:
		return NewSized(), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", errors.ErrInvalidConfiguration, name)
	}
}

// Balance splits characters with the balanced strategy.
func Balance(characters []domain.Character, cfg Config) ([]domain.Party, error) {
	result, err := NewBalanced().Assign(characters, cfg)
	if err != nil {
		return nil, err
	}
	return result.Parties, nil
}

// Spread returns the difference between the highest and the lowest party total level.
func Spread(parties []domain.Party) int {
	if len(parties) == 0 {
		return 0
	}
	hi, lo := extremes(parties)
	return parties[hi].TotalLevel() - parties[lo].TotalLevel()
}

// prepare validates the request and returns the roster in seeding order
// together with the number of parties to build.
func prepare(characters []domain.Character, cfg Config) ([]domain.Character, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	seen := make(map[domain.CharacterID]struct{}, len(characters))
	for _, c := range characters {
		if _, ok := seen[c.ID]; ok {
			return nil, 0, fmt.Errorf("%w: duplicate character id %d", errors.ErrInvalidConfiguration, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	sorted := slices.Clone(characters)
	slices.SortFunc(sorted, domain.CompareForSeeding)
	return sorted, cfg.PartyCount(len(sorted)), nil
}

// deal distributes characters round-robin over k buckets, keeping their order.
func deal(characters []domain.Character, k int) []domain.Party {
	buckets := make([]domain.Party, k)
	for i, c := range characters {
		buckets[i%k] = append(buckets[i%k], c)
	}
	return buckets
}

// finalize sorts every party's members so that output never depends on move history.
func finalize(buckets []domain.Party) []domain.Party {
	parties := make([]domain.Party, 0, len(buckets))
	for _, b := range buckets {
		members := slices.Clone(b)
		slices.SortFunc(members, domain.CompareForSeeding)
		parties = append(parties, members)
	}
	return parties
}

// extremes returns the indexes of the parties with the highest and the lowest
// total level. The lowest index wins ties.
func extremes(parties []domain.Party) (hi, lo int) {
	hiTotal, loTotal := parties[0].TotalLevel(), parties[0].TotalLevel()
	for i := 1; i < len(parties); i++ {
		total := parties[i].TotalLevel()
		if total > hiTotal {
			hi, hiTotal = i, total
		}
		if total < loTotal {
			lo, loTotal = i, total
		}
	}
	return hi, lo
}

func emptyResult(name string) Result {
	return Result{Parties: []domain.Party{}, Stats: Stats{Strategy: name}}
}
