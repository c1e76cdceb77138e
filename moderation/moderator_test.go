package moderation

import (
	"log/slog"
	"party-lab/domain"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary avoids short words that would collide inside ordinary ones.
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"goblin", "troll", "necromancer"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The goblin is here",
			expected: "The ****** is here",
			words:    []string{"goblin"},
		},
		{
			name:     "Multiple occurrences",
			input:    "goblin goblin",
			expected: "****** ******",
			words:    []string{"goblin", "goblin"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "G.0.b.l.1.n rises",
			expected: "*********** rises",
			words:    []string{"goblin"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "T-R-O-L-L and a Goblin",
			expected: "********* and a ******",
			words:    []string{"troll", "goblin"},
		},
		{
			name:     "Accents are kept",
			input:    "Un été avec un goblin",
			expected: "Un été avec un ******",
			words:    []string{"goblin"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "Beware the goblin.",
			expected: "Beware the ******.",
			words:    []string{"goblin"},
		},
		{
			name:     "Nothing to censor",
			input:    "Party of four heroes",
			expected: "Party of four heroes",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not leet speak in the dictionary
	dictionary := []string{"...", ",,,", "", "goblin"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	content, words := mod.Censor("The goblin is safe")
	req.Equal("The ****** is safe", content)
	req.Equal([]string{"goblin"}, words)

	// Then real noise is uncensored
	content, words = mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_EmptyDictionary(t *testing.T) {
	req := require.New(t)

	mod, err := NewModerator(nil, replacementChar, slog.Default())
	req.NoError(err)

	content, words := mod.Censor("goblin")
	req.Equal("goblin", content)
	req.Nil(words)
}

func TestModerator_CensorCharacter(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"goblin", "troll"}, '#', slog.Default())
	req.NoError(err)

	// Given a character with banned words in its free text fields
	character := domain.Character{
		ID:         4,
		Name:       "Goblin Slayer",
		Race:       "Human",
		CharClass:  "Fighter",
		Level:      5,
		Player:     "sam",
		Background: "Raised by trolls",
	}

	// When it is censored
	censored, words := mod.CensorCharacter(character)

	// Then only the free text is masked
	req.Equal("###### Slayer", censored.Name)
	req.Equal("Raised by #####s", censored.Background)
	req.Equal("sam", censored.Player)
	req.Equal(character.CharClass, censored.CharClass)
	req.Equal([]string{"goblin", "troll"}, words)
}
