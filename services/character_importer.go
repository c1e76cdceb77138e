package services

import (
	"fmt"
	"log/slog"
	"party-lab/domain"
	"party-lab/repositories"
)

// ImportFailure explains why a legacy record was left out.
type ImportFailure struct {
	ID     domain.CharacterID
	Name   string
	Reason string
}

type ImportReport struct {
	Imported int
	Censored int
	Skipped  []ImportFailure
}

// CharacterImporter loads legacy character records, keeping their ids.
type CharacterImporter struct {
	repository repositories.ICharacterRepository
	censor     ICensor
	log        *slog.Logger
}

func NewCharacterImporter(repository repositories.ICharacterRepository, censor ICensor, log *slog.Logger) *CharacterImporter {
	return &CharacterImporter{repository: repository, censor: censor, log: log}
}

// Import validates and censors every record, then stores the valid ones unless dryRun is set.
// Records with a non positive or repeated id, or failing validation, are skipped and reported.
// A storage error stops the import.
func (i *CharacterImporter) Import(characters []domain.Character, dryRun bool) (ImportReport, error) {
	var report ImportReport
	seen := make(map[domain.CharacterID]struct{}, len(characters))

	for _, c := range characters {
		if c.ID <= 0 {
			report.Skipped = append(report.Skipped, ImportFailure{ID: c.ID, Name: c.Name, Reason: "id must be positive"})
			continue
		}
		if _, ok := seen[c.ID]; ok {
			report.Skipped = append(report.Skipped, ImportFailure{ID: c.ID, Name: c.Name, Reason: "duplicate id"})
			continue
		}
		seen[c.ID] = struct{}{}

		if err := inputFrom(c).Validate(); err != nil {
			report.Skipped = append(report.Skipped, ImportFailure{ID: c.ID, Name: c.Name, Reason: err.Error()})
			continue
		}

		censored, found := i.censor.CensorCharacter(c)
		if len(found) > 0 {
			report.Censored++
		}
		if !dryRun {
			if err := i.repository.Put(censored); err != nil {
				return report, fmt.Errorf("import character %d: %w", c.ID, err)
			}
		}
		report.Imported++
	}

	i.log.Info("Legacy characters imported",
		"imported", report.Imported,
		"censored", report.Censored,
		"skipped", len(report.Skipped),
		"dry_run", dryRun,
	)
	return report, nil
}
