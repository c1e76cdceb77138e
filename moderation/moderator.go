// Package moderation masks banned words in free text written by players.
package moderation

import (
	"log/slog"
	"party-lab/domain"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized banned words.
// Words that normalize to nothing are ignored, an empty list yields a moderator that censors nothing.
func NewModerator(bannedWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(bannedWords))
	for _, word := range bannedWords {
		if p := normalizeRunes([]rune(word)); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	patterns = lo.UniqBy(patterns, func(p []rune) string { return string(p) })

	mod := &Moderator{censoredChar: censoredChar, log: log}
	if len(patterns) == 0 {
		return mod, nil
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	mod.matcher = m
	log.Debug("Moderator ready", "patterns", len(patterns))
	return mod, nil
}

// Censor replaces every banned word in original with the censor rune, keeping spacing and punctuation.
// It also returns the banned words found, in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var found []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[normStart]; i <= mapping.origIdx[normEnd-1]; i++ {
			origRunes[i] = m.censoredChar
		}
		found = append(found, string(span.Word))
	}
	return string(origRunes), found
}

// CensorCharacter masks the player-written fields of a character.
// Class and race are picked from fixed vocabularies and stay untouched.
func (m *Moderator) CensorCharacter(character domain.Character) (domain.Character, []string) {
	name, inName := m.Censor(character.Name)
	background, inBackground := m.Censor(character.Background)
	player, inPlayer := m.Censor(character.Player)

	character.Name = name
	character.Background = background
	character.Player = player
	found := append(append(inName, inBackground...), inPlayer...)
	if len(found) > 0 {
		m.log.Info("Censored character", "id", character.ID, "words", len(found))
	}
	return character, found
}

// normalize lowers and simplifies input, dropping noise runes and remembering where each kept rune came from.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	return normalize(string(input)).normalized
}

// simplifyRune maps leet speak back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
