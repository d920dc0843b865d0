package session

import (
	"testing"

	"BookStoreAPI/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage())
	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken("jwt-abc"))
	assert.Equal(t, "jwt-abc", s.Token())

	require.NoError(t, s.SetToken(""))
	assert.Empty(t, s.Token())
}

func TestPendingEmailRoundTrip(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage())
	assert.Empty(t, s.PendingEmail())

	require.NoError(t, s.SetPendingEmail("reader@example.com"))
	assert.Equal(t, "reader@example.com", s.PendingEmail())

	require.NoError(t, s.SetPendingEmail(""))
	assert.Empty(t, s.PendingEmail())
}
