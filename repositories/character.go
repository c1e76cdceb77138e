//go:generate go run go.uber.org/mock/mockgen -source=character.go -destination=../mocks/mock_character_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"party-lab/domain"
	"party-lab/errors"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	characterPrefix = "character:"
	characterSeqKey = "seq:character"
	maxTxnRetries   = 5
)

type ICharacterRepository interface {
	Create(character domain.Character) (domain.Character, error)
	Put(character domain.Character) error
	Get(id domain.CharacterID) (domain.Character, error)
	GetMany(ids []domain.CharacterID) ([]domain.Character, []domain.CharacterID, error)
	List() ([]domain.Character, error)
	Update(character domain.Character) error
	Delete(id domain.CharacterID) error
}

type CharacterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCharacterRepository(db *badger.DB, log *slog.Logger) CharacterRepository {
	return CharacterRepository{db: db, log: log}
}

// DiskCharacter is the stored form of a character.
type DiskCharacter struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	CharClass  string `json:"class"`
	Level      int    `json:"level"`
	Player     string `json:"player"`
	Background string `json:"background,omitempty"`
	UpdatedAt  int64  `json:"updated_at"`
}

// characterKey pads the id to 20 digits so a prefix scan returns characters by ascending id.
func characterKey(id domain.CharacterID) []byte {
	return fmt.Appendf(nil, "%s%020d", characterPrefix, id)
}

// Create allocates the next id and persists the character.
// The id counter lives in the same transaction as the record, conflicting writers are retried.
func (r CharacterRepository) Create(character domain.Character) (domain.Character, error) {
	var created domain.Character
	err := r.retry(func(txn *badger.Txn) error {
		last, err := readSequence(txn)
		if err != nil {
			return err
		}
		created = character
		created.ID = domain.CharacterID(last + 1)
		if err = writeSequence(txn, last+1); err != nil {
			return err
		}
		return setCharacter(txn, created)
	})
	if err != nil {
		return domain.Character{}, err
	}
	return created, nil
}

// Put stores a character under its own id, overwriting any previous record.
// The id counter is moved forward so later creations never collide.
func (r CharacterRepository) Put(character domain.Character) error {
	if character.ID <= 0 {
		return fmt.Errorf("%w: character id must be positive", errors.ErrInvalidInput)
	}
	return r.retry(func(txn *badger.Txn) error {
		last, err := readSequence(txn)
		if err != nil {
			return err
		}
		if int64(character.ID) > last {
			if err = writeSequence(txn, int64(character.ID)); err != nil {
				return err
			}
		}
		return setCharacter(txn, character)
	})
}

func (r CharacterRepository) Get(id domain.CharacterID) (domain.Character, error) {
	var character domain.Character
	err := r.db.View(func(txn *badger.Txn) error {
		found, err := getCharacter(txn, id)
		character = found
		return err
	})
	return character, err
}

// GetMany resolves ids in the order given.
// Ids with no stored character are returned in missing instead of failing the lookup.
func (r CharacterRepository) GetMany(ids []domain.CharacterID) ([]domain.Character, []domain.CharacterID, error) {
	var found []domain.Character
	var missing []domain.CharacterID
	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			character, err := getCharacter(txn, id)
			switch {
			case stderrors.Is(err, errors.ErrCharacterNotFound):
				missing = append(missing, id)
			case err != nil:
				return err
			default:
				found = append(found, character)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return found, missing, nil
}

// List returns every character ordered by id.
func (r CharacterRepository) List() ([]domain.Character, error) {
	characters := make([]domain.Character, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(characterPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var disk DiskCharacter
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &disk)
			})
			if err != nil {
				r.log.Warn("Skipping unreadable character", "key", string(it.Item().Key()), "error", err)
				continue
			}
			characters = append(characters, toCharacter(disk))
		}
		return nil
	})
	return characters, err
}

// Update replaces an existing character. Unknown ids report ErrCharacterNotFound.
func (r CharacterRepository) Update(character domain.Character) error {
	return r.retry(func(txn *badger.Txn) error {
		if _, err := getCharacter(txn, character.ID); err != nil {
			return err
		}
		return setCharacter(txn, character)
	})
}

func (r CharacterRepository) Delete(id domain.CharacterID) error {
	return r.retry(func(txn *badger.Txn) error {
		if _, err := getCharacter(txn, id); err != nil {
			return err
		}
		return txn.Delete(characterKey(id))
	})
}

func (r CharacterRepository) retry(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 1; attempt <= maxTxnRetries; attempt++ {
		err = r.db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		r.log.Debug("Transaction conflict, retrying", "attempt", attempt)
	}
	return err
}

func getCharacter(txn *badger.Txn, id domain.CharacterID) (domain.Character, error) {
	item, err := txn.Get(characterKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Character{}, fmt.Errorf("%w: id %d", errors.ErrCharacterNotFound, id)
	}
	if err != nil {
		return domain.Character{}, err
	}
	var disk DiskCharacter
	if err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &disk)
	}); err != nil {
		return domain.Character{}, fmt.Errorf("decode character %d: %w", id, err)
	}
	return toCharacter(disk), nil
}

func setCharacter(txn *badger.Txn, character domain.Character) error {
	data, err := json.Marshal(lo.ToPtr(fromCharacter(character)))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(characterKey(character.ID), data)
}

func readSequence(txn *badger.Txn) (int64, error) {
	item, err := txn.Get([]byte(characterSeqKey))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var last int64
	err = item.Value(func(val []byte) error {
		last, err = strconv.ParseInt(string(val), 10, 64)
		return err
	})
	return last, err
}

func writeSequence(txn *badger.Txn, value int64) error {
	return txn.Set([]byte(characterSeqKey), []byte(strconv.FormatInt(value, 10)))
}

func fromCharacter(c domain.Character) DiskCharacter {
	return DiskCharacter{
		ID:         int64(c.ID),
		Name:       c.Name,
		Race:       c.Race,
		CharClass:  c.CharClass,
		Level:      c.Level,
		Player:     c.Player,
		Background: c.Background,
		UpdatedAt:  time.Now().Unix(),
	}
}

func toCharacter(d DiskCharacter) domain.Character {
	return domain.Character{
		ID:         domain.CharacterID(d.ID),
		Name:       d.Name,
		Race:       d.Race,
		CharClass:  d.CharClass,
		Level:      d.Level,
		Player:     d.Player,
		Background: d.Background,
	}
}
