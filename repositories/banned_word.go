package repositories

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const bannedWordPrefix = "blacklist:"

// BannedWordRepository keeps the moderation word list next to the characters.
// Words are stored lowercase as bare keys with no value.
type BannedWordRepository struct {
	db *badger.DB
}

func NewBannedWordRepository(db *badger.DB) BannedWordRepository {
	return BannedWordRepository{db: db}
}

func (r BannedWordRepository) Add(words []string) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	for _, word := range normalizeWords(words) {
		if err := wb.Set([]byte(bannedWordPrefix+word), nil); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func (r BannedWordRepository) Remove(word string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(bannedWordPrefix + strings.ToLower(strings.TrimSpace(word))))
	})
}

// List returns the stored words in lexical order.
func (r BannedWordRepository) List() ([]string, error) {
	words := make([]string, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(bannedWordPrefix)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, strings.TrimPrefix(string(it.Item().Key()), bannedWordPrefix))
		}
		return nil
	})
	return words, err
}

func normalizeWords(words []string) []string {
	cleaned := lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	return lo.Uniq(lo.Compact(cleaned))
}
