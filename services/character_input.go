package services

import (
	"fmt"
	"party-lab/domain"
	"party-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CharacterInput is a complete character as written by a DM.
type CharacterInput struct {
	Name       string `json:"name" validate:"required,max=64"`
	Race       string `json:"race" validate:"required,max=32"`
	CharClass  string `json:"char_class" validate:"required,max=32"`
	Level      int    `json:"level" validate:"required,gte=1,lte=1000"`
	Player     string `json:"player" validate:"required,max=64"`
	Background string `json:"background" validate:"max=2000"`
}

// CharacterPatch is a partial update; nil fields keep their stored value.
type CharacterPatch struct {
	Name       *string `json:"name"`
	Race       *string `json:"race"`
	CharClass  *string `json:"char_class"`
	Level      *int    `json:"level"`
	Player     *string `json:"player"`
	Background *string `json:"background"`
}

func (in CharacterInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return nil
}

func (in CharacterInput) toCharacter(id domain.CharacterID) domain.Character {
	return domain.Character{
		ID:         id,
		Name:       in.Name,
		Race:       in.Race,
		CharClass:  in.CharClass,
		Level:      in.Level,
		Player:     in.Player,
		Background: in.Background,
	}
}

func inputFrom(c domain.Character) CharacterInput {
	return CharacterInput{
		Name:       c.Name,
		Race:       c.Race,
		CharClass:  c.CharClass,
		Level:      c.Level,
		Player:     c.Player,
		Background: c.Background,
	}
}

// Apply merges the patch onto current. The result is validated as a whole by the caller.
func (p CharacterPatch) Apply(current CharacterInput) CharacterInput {
	merged := current
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Race != nil {
		merged.Race = *p.Race
	}
	if p.CharClass != nil {
		merged.CharClass = *p.CharClass
	}
	if p.Level != nil {
		merged.Level = *p.Level
	}
	if p.Player != nil {
		merged.Player = *p.Player
	}
	if p.Background != nil {
		merged.Background = *p.Background
	}
	return merged
}

func (p CharacterPatch) IsEmpty() bool {
	return p == CharacterPatch{}
}
