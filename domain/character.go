// Package domain contains core concepts of the party system.
// This file defines Character records and their ordering rules.
// Characters are immutable once handed to the balancer.
package domain

import "cmp"

type CharacterID int64

// Character is a player's adventurer as stored and as serialized to clients.
type Character struct {
	ID         CharacterID `json:"id"`
	Name       string      `json:"name"`
	Race       string      `json:"race"`
	CharClass  string      `json:"char_class"`
	Level      int         `json:"level"`
	Player     string      `json:"player"`
	Background string      `json:"background"`
}

// CompareForSeeding orders characters by class, then by level descending,
// then by id so that two distinct characters never compare equal.
func CompareForSeeding(a, b Character) int {
	if c := cmp.Compare(a.CharClass, b.CharClass); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Level, a.Level); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
