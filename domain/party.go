package domain

import "github.com/samber/lo"

// Party is a group of characters meant to play one session together.
// It has no identity beyond its position in a balancing result.
type Party []Character

func (p Party) TotalLevel() int {
	return lo.SumBy(p, func(c Character) int { return c.Level })
}

// AverageLevel returns 0 for an empty party.
func (p Party) AverageLevel() float64 {
	if len(p) == 0 {
		return 0
	}
	return float64(p.TotalLevel()) / float64(len(p))
}

func (p Party) ClassCounts() map[string]int {
	return lo.CountValuesBy(p, func(c Character) string { return c.CharClass })
}

func (p Party) IDs() []CharacterID {
	return lo.Map(p, func(c Character, _ int) CharacterID { return c.ID })
}

// PartySummary is the read-only view of a party with its derived metrics.
type PartySummary struct {
	Members      Party          `json:"members"`
	TotalLevel   int            `json:"total_level"`
	AverageLevel float64        `json:"average_level"`
	ClassCounts  map[string]int `json:"class_counts"`
}

func Summarize(p Party) PartySummary {
	return PartySummary{
		Members:      p,
		TotalLevel:   p.TotalLevel(),
		AverageLevel: p.AverageLevel(),
		ClassCounts:  p.ClassCounts(),
	}
}
