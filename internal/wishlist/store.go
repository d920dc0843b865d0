package wishlist

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"BookStoreAPI/internal/events"
	"BookStoreAPI/internal/model"
	"BookStoreAPI/internal/storage"
)

// Store holds the user's wishlist: full product snapshots, unique by
// book id. Every mutation writes the whole list to durable storage
// before returning, then emits events.WishlistChanged so detached
// components (badge counters and the like) can re-read it.
type Store struct {
	mu      sync.Mutex
	items   []model.Book
	storage storage.Storage
	bus     *events.Bus
}

// NewStore loads the persisted wishlist. Absent or malformed stored
// JSON loads as an empty list; it never fails construction.
func NewStore(st storage.Storage, bus *events.Bus) *Store {
	s := &Store{storage: st, bus: bus}
	raw, err := st.Get(storage.KeyWishlist)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("wishlist: reading stored state", "err", err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.items); err != nil {
		slog.Warn("wishlist: discarding malformed stored state", "err", err)
		s.items = nil
	}
	return s
}

// Toggle adds a snapshot of the book, or removes it when a book with
// the same id is already present. A single operation keeps UI toggling
// idempotent. Returns true when the book is present after the call.
func (s *Store) Toggle(book model.Book) (bool, error) {
	s.mu.Lock()
	present := true
	removed := false
	for i, it := range s.items {
		if it.BookID == book.BookID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			present = false
			removed = true
			break
		}
	}
	if !removed {
		s.items = append(s.items, book)
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return present, err
	}
	s.notify()
	return present, nil
}

// IsPresent reports membership by book id.
func (s *Store) IsPresent(bookID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.BookID == bookID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current entries in insertion order.
func (s *Store) Items() []model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Book, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear empties the wishlist.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.items = nil
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// RemoveMany drops every entry the predicate matches. Callers doing
// bulk moves (wishlist to cart) pass a predicate matching only the
// items their external operation succeeded for, so a partial failure
// leaves the failed entries in place.
func (s *Store) RemoveMany(match func(model.Book) bool) error {
	s.mu.Lock()
	kept := make([]model.Book, 0, len(s.items))
	removed := false
	for _, it := range s.items {
		if match(it) {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		s.mu.Unlock()
		return nil
	}
	s.items = kept
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// persistLocked serializes the full state; callers hold s.mu. The
// storage write completes before any event fires, so listeners always
// re-read the state they were notified about.
func (s *Store) persistLocked() error {
	items := s.items
	if items == nil {
		items = []model.Book{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.storage.Set(storage.KeyWishlist, raw)
}

func (s *Store) notify() {
	if s.bus != nil {
		s.bus.Publish(events.WishlistChanged)
	}
}
