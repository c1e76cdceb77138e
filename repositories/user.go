//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"party-lab/domain"
	"party-lab/errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const userPrefix = "user:"

type IUserRepository interface {
	CreateUser(username, hashedPassword string, role domain.Role) (User, error)
	GetUserByUsername(username string) (User, error)
	ListUsers() ([]User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the repository view of an account.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"password_hash"`
	Role         domain.Role `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (u User) Session() domain.Session {
	return domain.Session{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// usernames are case-insensitive, "Gandalf" and "gandalf" are the same account
func userKey(username string) []byte {
	return []byte(userPrefix + strings.ToLower(username))
}

// CreateUser persists a new account and returns it with its generated id.
func (u UserRepository) CreateUser(username, hashedPassword string, role domain.Role) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	data, err := json.Marshal(user)
	if err != nil {
		return User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		if _, err = txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUserByUsername(username string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// ListUsers returns every account ordered by lowercase username.
func (u UserRepository) ListUsers() ([]User, error) {
	users := make([]User, 0)
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user User
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &user)
			}); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	return users, err
}
