// Command importer loads a legacy data.json character array into the store.
// Ids are kept and the id sequence is moved past the highest one.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"party-lab/domain"
	"party-lab/internal"
	"party-lab/moderation"
	"party-lab/repositories"
	"party-lab/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	file := flag.String("file", "data.json", "legacy character file")
	censor := flag.String("censor", "*", "replacement for banned words")
	dryRun := flag.Bool("dry-run", false, "validate without writing")
	logLevel := flag.String("log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	flag.Parse()

	log := logs.GetLoggerFromString(*logLevel)
	if *dbPath == "" {
		return fmt.Errorf("missing -db or BADGER_FILEPATH")
	}
	censorChar, err := internal.CharacterRune(*censor)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	var characters []domain.Character
	if err = json.Unmarshal(raw, &characters); err != nil {
		return fmt.Errorf("%s: %w", *file, err)
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()

	words, err := repositories.NewBannedWordRepository(db).List()
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(words, censorChar, log)
	if err != nil {
		return err
	}

	importer := services.NewCharacterImporter(repositories.NewCharacterRepository(db, log), moderator, log)
	report, err := importer.Import(characters, *dryRun)
	if err != nil {
		return err
	}

	for _, skipped := range report.Skipped {
		fmt.Printf("skipped %d %q: %s\n", skipped.ID, skipped.Name, skipped.Reason)
	}
	fmt.Printf("%d imported, %d censored, %d skipped\n", report.Imported, report.Censored, len(report.Skipped))
	return nil
}
