package balancer

import "party-lab/domain"

// ClassSpread only performs the diversity seeding: characters sorted by class
// are dealt round-robin so that every party gets a mix of roles.
type ClassSpread struct{}

var _ Strategy = (*ClassSpread)(nil)

func NewClassSpread() *ClassSpread {
	return &ClassSpread{}
}

func (c *ClassSpread) Name() string {
	return StrategyClasses
}

func (c *ClassSpread) Assign(characters []domain.Character, cfg Config) (Result, error) {
	sorted, k, err := prepare(characters, cfg)
	if err != nil {
		return Result{}, err
	}
	if len(sorted) == 0 {
		return emptyResult(c.Name()), nil
	}

	parties := finalize(deal(sorted, k))
	spread := Spread(parties)
	return Result{
		Parties: parties,
		Stats: Stats{
			Strategy:    c.Name(),
			Characters:  len(sorted),
			Parties:     len(parties),
			SeedSpread:  spread,
			FinalSpread: spread,
		},
	}, nil
}
