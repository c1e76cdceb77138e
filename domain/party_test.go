package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParty_Metrics(t *testing.T) {
	req := require.New(t)
	party := Party{
		{ID: 1, Name: "Aldric", CharClass: "fighter", Level: 5},
		{ID: 2, Name: "Shade", CharClass: "rogue", Level: 3},
		{ID: 3, Name: "Bruna", CharClass: "fighter", Level: 4},
	}

	req.Equal(12, party.TotalLevel())
	req.InDelta(4.0, party.AverageLevel(), 0.0001)
	req.Equal(map[string]int{"fighter": 2, "rogue": 1}, party.ClassCounts())
	req.Equal([]CharacterID{1, 2, 3}, party.IDs())
}

func TestParty_EmptyMetrics(t *testing.T) {
	req := require.New(t)
	var party Party

	req.Zero(party.TotalLevel())
	req.Zero(party.AverageLevel())
	req.Empty(party.ClassCounts())
}

func TestCompareForSeeding(t *testing.T) {
	tests := []struct {
		description string
		a, b        Character
		want        int
	}{
		{"class sorts first", Character{ID: 9, CharClass: "cleric", Level: 1}, Character{ID: 1, CharClass: "wizard", Level: 20}, -1},
		{"higher level first within a class", Character{ID: 9, CharClass: "cleric", Level: 7}, Character{ID: 1, CharClass: "cleric", Level: 3}, -1},
		{"lowest id breaks ties", Character{ID: 4, CharClass: "cleric", Level: 3}, Character{ID: 2, CharClass: "cleric", Level: 3}, 1},
		{"same character", Character{ID: 2, CharClass: "cleric", Level: 3}, Character{ID: 2, CharClass: "cleric", Level: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, CompareForSeeding(tt.a, tt.b))
		})
	}
}

func TestRole_Valid(t *testing.T) {
	req := require.New(t)
	req.True(RolePlayer.Valid())
	req.True(RoleDM.Valid())
	req.False(Role("admin").Valid())
	req.True(Session{Role: RoleDM}.IsDM())
	req.False(Session{Role: RolePlayer}.IsDM())
}
