// Command inspect dumps the characters and accounts of a party-lab store as a table.
// The store is opened read-only, so it can run next to a live server.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"party-lab/repositories"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	kind := flag.String("kind", "characters", "characters, users or words")
	width := flag.Int("width", 40, "truncate long text columns, 0 keeps everything")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db or BADGER_FILEPATH")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := newTable()
	logger := logs.GetLoggerFromLevel(slog.LevelWarn)

	switch *kind {
	case "characters":
		err = dumpCharacters(table, repositories.NewCharacterRepository(db, logger), *width)
	case "users":
		err = dumpUsers(table, repositories.NewUserRepository(db))
	case "words":
		err = dumpWords(table, repositories.NewBannedWordRepository(db))
	default:
		err = fmt.Errorf("unknown kind %q", *kind)
	}
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func dumpCharacters(table *tablewriter.Table, repository repositories.ICharacterRepository, width int) error {
	characters, err := repository.List()
	if err != nil {
		return err
	}
	table.SetHeader([]string{"ID", "Name", "Race", "Class", "Level", "Player", "Background"})
	total := 0
	for _, c := range characters {
		total += c.Level
		table.Append([]string{
			strconv.FormatInt(int64(c.ID), 10),
			c.Name,
			c.Race,
			c.CharClass,
			strconv.Itoa(c.Level),
			c.Player,
			truncate(c.Background, width),
		})
	}
	table.SetFooter([]string{"", "", "", "", strconv.Itoa(total), strconv.Itoa(len(characters)) + " characters", ""})
	return nil
}

func dumpUsers(table *tablewriter.Table, repository repositories.IUserRepository) error {
	users, err := repository.ListUsers()
	if err != nil {
		return err
	}
	table.SetHeader([]string{"ID", "Username", "Role", "Created"})
	for _, u := range users {
		table.Append([]string{u.ID, u.Username, string(u.Role), u.CreatedAt.Format("2006-01-02 15:04:05")})
	}
	return nil
}

func dumpWords(table *tablewriter.Table, repository repositories.BannedWordRepository) error {
	words, err := repository.List()
	if err != nil {
		return err
	}
	table.SetHeader([]string{"Banned word"})
	for _, w := range words {
		table.Append([]string{w})
	}
	return nil
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
