// Package auth handles signup, login and bearer-token verification.
// Accounts are stored in the same key-value store as inventory data, but
// under the "account:" prefix, outside every tenant namespace.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pventura/stockroom/internal/kv"
	"github.com/pventura/stockroom/internal/models"
)

const accountPrefix = "account:"

var (
	// ErrUserExists is returned when the username is already taken.
	ErrUserExists = errors.New("username already exists")
	// ErrBadCredentials covers both unknown usernames and wrong
	// passwords; login failures are indistinguishable on purpose.
	ErrBadCredentials = errors.New("invalid username or password")
)

// UserStore persists accounts keyed by username.
type UserStore struct {
	store kv.Store
}

// NewUserStore creates a store over the shared key-value backend.
func NewUserStore(store kv.Store) *UserStore {
	return &UserStore{store: store}
}

// Register creates an account with a bcrypt-hashed password and returns
// it. The generated account id becomes the user's tenant id.
func (s *UserStore) Register(ctx context.Context, username, password, name string) (models.Account, error) {
	key := accountPrefix + username
	if _, err := s.store.Get(ctx, key); err == nil {
		return models.Account{}, ErrUserExists
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		return models.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hashing password: %w", err)
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	raw, err := json.Marshal(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("encoding account: %w", err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Authenticate checks the password against the stored hash.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (models.Account, error) {
	raw, err := s.store.Get(ctx, accountPrefix+username)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return models.Account{}, ErrBadCredentials
	}
	if err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return models.Account{}, fmt.Errorf("decoding account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return models.Account{}, ErrBadCredentials
	}
	return account, nil
}
