package services_test

import (
	"fmt"
	"log/slog"
	"party-lab/domain"
	"party-lab/mocks"
	"party-lab/services"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCharacterImporter_Import(t *testing.T) {
	legacy := []domain.Character{
		{ID: 3, Name: "Gimli", Race: "Dwarf", CharClass: "Fighter", Level: 8, Player: "john"},
		{ID: 0, Name: "Nobody", Race: "Human", CharClass: "Bard", Level: 1, Player: "x"},
		{ID: 3, Name: "Gimli again", Race: "Dwarf", CharClass: "Fighter", Level: 8, Player: "john"},
		{ID: 5, Name: "", Race: "Elf", CharClass: "Wizard", Level: 4, Player: "liv"},
		{ID: 9, Name: "Bolg", Race: "Orc", CharClass: "Fighter", Level: 6, Player: "x", Background: "a goblin chief"},
	}

	t.Run("should store valid records and report the rest", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockICharacterRepository(ctrl)
		importer := services.NewCharacterImporter(repo, newModerator(t), slog.Default())

		var stored []domain.Character
		repo.EXPECT().Put(gomock.Any()).DoAndReturn(func(c domain.Character) error {
			stored = append(stored, c)
			return nil
		}).Times(2)

		report, err := importer.Import(legacy, false)

		req.NoError(err)
		req.Equal(2, report.Imported)
		req.Equal(1, report.Censored)
		req.Len(report.Skipped, 3)
		req.Equal("id must be positive", report.Skipped[0].Reason)
		req.Equal("duplicate id", report.Skipped[1].Reason)
		req.Equal(domain.CharacterID(5), report.Skipped[2].ID)

		req.Equal(domain.CharacterID(3), stored[0].ID)
		req.Equal(domain.CharacterID(9), stored[1].ID)
		req.Equal("a ****** chief", stored[1].Background)
	})

	t.Run("should not write in dry run", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockICharacterRepository(ctrl)
		importer := services.NewCharacterImporter(repo, newModerator(t), slog.Default())

		report, err := importer.Import(legacy, true)

		req.NoError(err)
		req.Equal(2, report.Imported)
	})

	t.Run("should stop on storage error", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockICharacterRepository(ctrl)
		censor := mocks.NewMockICensor(ctrl)
		importer := services.NewCharacterImporter(repo, censor, slog.Default())

		censor.EXPECT().CensorCharacter(legacy[0]).Return(legacy[0], nil)
		repo.EXPECT().Put(legacy[0]).Return(fmt.Errorf("disk full"))

		report, err := importer.Import(legacy, false)

		req.ErrorContains(err, "disk full")
		req.Equal(0, report.Imported)
	})
}
