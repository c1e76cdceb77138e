package repositories

import (
	"log/slog"
	"party-lab/domain"
	"party-lab/errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newCharacter(name, class string, level int) domain.Character {
	return domain.Character{Name: name, Race: "Human", CharClass: class, Level: level, Player: "sam"}
}

func Test_Create_Assigns_Increasing_Ids(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given three characters created one after the other
	first, err := repository.Create(newCharacter("Aragorn", "Ranger", 10))
	req.NoError(err)
	second, err := repository.Create(newCharacter("Gimli", "Fighter", 8))
	req.NoError(err)
	third, err := repository.Create(newCharacter("Legolas", "Ranger", 9))
	req.NoError(err)

	// Then ids start at one and grow by one
	req.Equal(domain.CharacterID(1), first.ID)
	req.Equal(domain.CharacterID(2), second.ID)
	req.Equal(domain.CharacterID(3), third.ID)

	// And the stored record matches what was created
	fetched, err := repository.Get(second.ID)
	req.NoError(err)
	req.Equal(second, fetched)
}

func Test_Put_Moves_Sequence_Forward(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), slog.Default())

	// Given an imported character keeping its legacy id
	imported := newCharacter("Frodo", "Rogue", 3)
	imported.ID = 41
	req.NoError(repository.Put(imported))

	// When a new character is created
	created, err := repository.Create(newCharacter("Sam", "Fighter", 3))
	req.NoError(err)

	// Then it is placed after the imported one
	req.Equal(domain.CharacterID(42), created.ID)

	// And a non positive id is refused
	req.ErrorIs(repository.Put(newCharacter("Nobody", "Wizard", 1)), errors.ErrInvalidInput)
}

func Test_GetMany_Reports_Missing_Ids(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), slog.Default())

	a, err := repository.Create(newCharacter("Aragorn", "Ranger", 10))
	req.NoError(err)
	b, err := repository.Create(newCharacter("Gimli", "Fighter", 8))
	req.NoError(err)

	found, missing, err := repository.GetMany([]domain.CharacterID{b.ID, 99, a.ID, 7})
	req.NoError(err)
	req.Equal([]domain.Character{b, a}, found)
	req.Equal([]domain.CharacterID{99, 7}, missing)
}

func Test_List_Is_Ordered_By_Id(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), slog.Default())

	// Given ids whose decimal strings would sort differently
	for _, id := range []domain.CharacterID{10, 2, 100, 1} {
		c := newCharacter("Pippin", "Bard", 2)
		c.ID = id
		req.NoError(repository.Put(c))
	}

	characters, err := repository.List()
	req.NoError(err)
	ids := make([]domain.CharacterID, 0, len(characters))
	for _, c := range characters {
		ids = append(ids, c.ID)
	}
	req.Equal([]domain.CharacterID{1, 2, 10, 100}, ids)
}

func Test_List_Empty_Store(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), slog.Default())

	characters, err := repository.List()
	req.NoError(err)
	req.NotNil(characters)
	req.Empty(characters)
}

func Test_Update_And_Delete(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), slog.Default())

	created, err := repository.Create(newCharacter("Boromir", "Fighter", 7))
	req.NoError(err)

	// When the level changes
	created.Level = 8
	req.NoError(repository.Update(created))
	fetched, err := repository.Get(created.ID)
	req.NoError(err)
	req.Equal(8, fetched.Level)

	// When the character is deleted
	req.NoError(repository.Delete(created.ID))

	// Then every access reports it missing
	_, err = repository.Get(created.ID)
	req.ErrorIs(err, errors.ErrCharacterNotFound)
	req.ErrorIs(repository.Delete(created.ID), errors.ErrCharacterNotFound)
	req.ErrorIs(repository.Update(created), errors.ErrCharacterNotFound)
}

func Test_Deleted_Ids_Are_Not_Reused(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openDB(t), slog.Default())

	first, err := repository.Create(newCharacter("Merry", "Rogue", 2))
	req.NoError(err)
	req.NoError(repository.Delete(first.ID))

	second, err := repository.Create(newCharacter("Pippin", "Bard", 2))
	req.NoError(err)
	req.Equal(first.ID+1, second.ID)
}
