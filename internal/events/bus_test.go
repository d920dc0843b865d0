package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribePublish(t *testing.T) {
	bus := NewBus()
	var a, b int
	bus.Subscribe(WishlistChanged, func() { a++ })
	bus.Subscribe(WishlistChanged, func() { b++ })
	bus.Subscribe(CartChanged, func() { b += 10 })

	bus.Publish(WishlistChanged)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	bus.Publish(CartChanged)
	assert.Equal(t, 1, a)
	assert.Equal(t, 11, b)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	var n int
	id := bus.Subscribe(WishlistChanged, func() { n++ })
	bus.Publish(WishlistChanged)
	bus.Unsubscribe(WishlistChanged, id)
	bus.Publish(WishlistChanged)
	assert.Equal(t, 1, n)
}

func TestPublishWithoutListeners(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Publish("nobody-listens") })
}
