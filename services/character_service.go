//go:generate go run go.uber.org/mock/mockgen -source=character_service.go -destination=../mocks/mock_character_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"party-lab/auth"
	"party-lab/domain"
	"party-lab/errors"
	"party-lab/repositories"
)

type ICharacterService interface {
	List(ctx context.Context) ([]domain.Character, error)
	Create(ctx context.Context, input CharacterInput) (domain.Character, error)
	Update(ctx context.Context, id domain.CharacterID, patch CharacterPatch) (domain.Character, error)
	Delete(ctx context.Context, id domain.CharacterID) error
}

// ICensor masks banned words in the free text of a character.
type ICensor interface {
	CensorCharacter(character domain.Character) (domain.Character, []string)
}

type CharacterService struct {
	repository repositories.ICharacterRepository
	censor     ICensor
	log        *slog.Logger
}

func NewCharacterService(repository repositories.ICharacterRepository, censor ICensor, log *slog.Logger) ICharacterService {
	return &CharacterService{repository: repository, censor: censor, log: log}
}

func (s *CharacterService) List(_ context.Context) ([]domain.Character, error) {
	return s.repository.List()
}

func (s *CharacterService) Create(ctx context.Context, input CharacterInput) (domain.Character, error) {
	if _, err := requireDM(ctx); err != nil {
		return domain.Character{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Character{}, err
	}
	character := s.censorCharacter(input.toCharacter(0))
	created, err := s.repository.Create(character)
	if err != nil {
		return domain.Character{}, err
	}
	s.log.Info("Character created", "id", created.ID, "class", created.CharClass, "level", created.Level)
	return created, nil
}

// Update merges patch onto the stored character and writes it back only if the
// merged record is valid as a whole.
func (s *CharacterService) Update(ctx context.Context, id domain.CharacterID, patch CharacterPatch) (domain.Character, error) {
	if _, err := requireDM(ctx); err != nil {
		return domain.Character{}, err
	}
	current, err := s.repository.Get(id)
	if err != nil {
		return domain.Character{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	merged := patch.Apply(inputFrom(current))
	if err = merged.Validate(); err != nil {
		return domain.Character{}, err
	}
	updated := s.censorCharacter(merged.toCharacter(id))
	if err = s.repository.Update(updated); err != nil {
		return domain.Character{}, err
	}
	s.log.Info("Character updated", "id", id)
	return updated, nil
}

// Delete removes a character. Deleting an id that does not exist succeeds.
func (s *CharacterService) Delete(ctx context.Context, id domain.CharacterID) error {
	if _, err := requireDM(ctx); err != nil {
		return err
	}
	err := s.repository.Delete(id)
	if stderrors.Is(err, errors.ErrCharacterNotFound) {
		s.log.Debug("Character already absent", "id", id)
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info("Character deleted", "id", id)
	return nil
}

func (s *CharacterService) censorCharacter(character domain.Character) domain.Character {
	censored, found := s.censor.CensorCharacter(character)
	if len(found) > 0 {
		s.log.Debug("Banned words masked", "id", character.ID, "name", censored.Name, "words", found)
	}
	return censored
}

func requireDM(ctx context.Context) (domain.Session, error) {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return domain.Session{}, errors.ErrUnauthenticated
	}
	if !session.IsDM() {
		return domain.Session{}, fmt.Errorf("%w: dungeon master role required", errors.ErrForbidden)
	}
	return session, nil
}
