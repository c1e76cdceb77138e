package balancer

import (
	"slices"

	"party-lab/domain"
)

// Balanced seeds parties for class diversity, then moves characters from
// the strongest to the weakest party until their total levels cannot get
// any closer.
//
// The sized variant keeps party sizes inside the configured range while
// refining: a move is only made when both parties stay in bounds, and
// hi/lo exchanges are considered alongside moves.
type Balanced struct {
	sized bool
}

var _ Strategy = (*Balanced)(nil)

func NewBalanced() *Balanced {
	return &Balanced{}
}

func NewSized() *Balanced {
	return &Balanced{sized: true}
}

func (b *Balanced) Name() string {
	if b.sized {
		return StrategySized
	}
	return StrategyBalanced
}

// Assign partitions characters into balanced parties.
//
// The algorithm:
//  1. Sort by class, then level descending, and deal round-robin into k parties
//  2. Repeatedly take the highest (hi) and lowest (lo) total-level parties and
//     move the character of hi that brings their totals closest without
//     overshooting, for at most 2*len(characters) iterations
//
// Every step strictly narrows the hi/lo gap while keeping both totals inside
// the previous [lo, hi] range, so the overall spread never grows. A lone
// member's level is at least the gap, so a move never empties a party.
func (b *Balanced) Assign(characters []domain.Character, cfg Config) (Result, error) {
	sorted, k, err := prepare(characters, cfg)
	if err != nil {
		return Result{}, err
	}
	if len(sorted) == 0 {
		return emptyResult(b.Name()), nil
	}

	buckets := deal(sorted, k)
	seedSpread := Spread(buckets)
	iterations := b.refine(buckets, cfg, 2*len(sorted))
	parties := finalize(buckets)

	return Result{
		Parties: parties,
		Stats: Stats{
			Strategy:    b.Name(),
			Characters:  len(sorted),
			Parties:     len(parties),
			SeedSpread:  seedSpread,
			FinalSpread: Spread(parties),
			Iterations:  iterations,
		},
	}, nil
}

// exchange describes one refinement step: out leaves hi for lo and, for a
// swap, in leaves lo for hi.
type exchange struct {
	out   domain.Character
	in    *domain.Character
	delta int
}

func (b *Balanced) refine(buckets []domain.Party, cfg Config, maxIterations int) int {
	iterations := 0
	for iterations < maxIterations {
		hi, lo := extremes(buckets)
		gap := buckets[hi].TotalLevel() - buckets[lo].TotalLevel()
		if gap <= 0 {
			break
		}
		best, ok := b.bestStep(buckets[hi], buckets[lo], gap, cfg)
		if !ok {
			break
		}
		buckets[hi], buckets[lo] = apply(buckets[hi], buckets[lo], best)
		iterations++
	}
	return iterations
}

// bestStep picks the admissible step minimising |gap - 2*delta|.
// A step is admissible when 0 < delta < gap, which strictly reduces the gap
// and never lets lo overtake hi by more than the original gap.
// Only the sized variant gates moves on the size range and tries exchanges.
func (b *Balanced) bestStep(hi, lo domain.Party, gap int, cfg Config) (exchange, bool) {
	canMove := !b.sized || (len(hi)-1 >= max(1, cfg.MinSize) && len(lo)+1 <= cfg.MaxSize)

	var best exchange
	found := false
	consider := func(candidate exchange) {
		if candidate.delta <= 0 || candidate.delta >= gap {
			return
		}
		if !found || better(candidate, best, gap) {
			best, found = candidate, true
		}
	}

	for _, out := range hi {
		if canMove {
			consider(exchange{out: out, delta: out.Level})
		}
		if !b.sized {
			continue
		}
		for _, in := range lo {
			partner := in
			consider(exchange{out: out, in: &partner, delta: out.Level - in.Level})
		}
	}
	return best, found
}

// better orders candidates by resulting gap, then lowest outgoing id,
// then moves before swaps, then lowest incoming id.
func better(a, b exchange, gap int) bool {
	if sa, sb := residual(gap, a.delta), residual(gap, b.delta); sa != sb {
		return sa < sb
	}
	if a.out.ID != b.out.ID {
		return a.out.ID < b.out.ID
	}
	switch {
	case a.in == nil && b.in == nil:
		return false
	case a.in == nil:
		return true
	case b.in == nil:
		return false
	default:
		return a.in.ID < b.in.ID
	}
}

func residual(gap, delta int) int {
	r := gap - 2*delta
	if r < 0 {
		return -r
	}
	return r
}

func apply(hi, lo domain.Party, step exchange) (domain.Party, domain.Party) {
	hi = without(hi, step.out.ID)
	lo = append(lo, step.out)
	if step.in != nil {
		lo = without(lo, step.in.ID)
		hi = append(hi, *step.in)
	}
	return hi, lo
}

func without(p domain.Party, id domain.CharacterID) domain.Party {
	return slices.DeleteFunc(slices.Clone(p), func(c domain.Character) bool { return c.ID == id })
}
