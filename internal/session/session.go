package session

import (
	"errors"
	"log/slog"

	"BookStoreAPI/internal/storage"
)

// Store gives typed access to the two session keys the storefront
// keeps in durable storage: the bearer token minted by the commerce
// backend and the email address awaiting OTP confirmation there. The
// flows themselves live upstream; this service only stores the values
// and hands the token to the API client.
type Store struct {
	storage storage.Storage
}

func NewStore(st storage.Storage) *Store {
	return &Store{storage: st}
}

// Token returns the stored bearer token, or "" when absent.
func (s *Store) Token() string {
	return s.getString(storage.KeyAuthToken)
}

func (s *Store) SetToken(token string) error {
	if token == "" {
		return s.storage.Delete(storage.KeyAuthToken)
	}
	return s.storage.Set(storage.KeyAuthToken, []byte(token))
}

// PendingEmail returns the email awaiting verification, or "" when
// absent.
func (s *Store) PendingEmail() string {
	return s.getString(storage.KeyPendingEmail)
}

func (s *Store) SetPendingEmail(email string) error {
	if email == "" {
		return s.storage.Delete(storage.KeyPendingEmail)
	}
	return s.storage.Set(storage.KeyPendingEmail, []byte(email))
}

func (s *Store) getString(key string) string {
	raw, err := s.storage.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("session: reading stored value", "key", key, "err", err)
		}
		return ""
	}
	return string(raw)
}
