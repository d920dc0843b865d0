package events

import (
	"sync"

	"github.com/google/uuid"
)

// Event names emitted by the stores. Events carry no payload: listeners
// re-read the full state from storage, so delivery order does not
// matter.
const (
	WishlistChanged = "wishlist-changed"
	CartChanged     = "cart-changed"
)

// Bus is a minimal in-process observer registry replacing the original
// ambient window-level events, so components can be tested in
// isolation.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string]map[uuid.UUID]func()
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[string]map[uuid.UUID]func())}
}

// Subscribe registers fn for the named event and returns a handle used
// to unsubscribe.
func (b *Bus) Subscribe(event string, fn func()) uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.New()
	if b.listeners[event] == nil {
		b.listeners[event] = make(map[uuid.UUID]func())
	}
	b.listeners[event][id] = fn
	return id
}

func (b *Bus) Unsubscribe(event string, id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners[event], id)
}

// Publish invokes every listener of the named event synchronously.
func (b *Bus) Publish(event string) {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.listeners[event]))
	for _, fn := range b.listeners[event] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
