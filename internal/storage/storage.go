package storage

import "errors"

// Fixed keys of the durable store. Values are plain JSON (or raw
// strings), no versioning: a value that fails to parse is treated as
// absent by its reader.
const (
	KeyWishlist     = "bookstore.wishlist"
	KeyAuthToken    = "bookstore.auth_token"
	KeyPendingEmail = "bookstore.pending_email"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Storage is the durable key/value contract the wishlist and session
// stores write through. Writes are synchronous: when Set returns, the
// value survives a restart.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
