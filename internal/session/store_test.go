package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenMintsUniqueUUIDs(t *testing.T) {
	a := NewToken()
	b := NewToken()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStoreKeyNamespacesTokens(t *testing.T) {
	store := NewStore(nil, 0, zerolog.Nop())
	assert.Equal(t, "quiz:session:abc", store.key("abc"))
}

func TestStoreTTLFallback(t *testing.T) {
	store := NewStore(nil, 0, zerolog.Nop())
	assert.Equal(t, defaultTTL, store.ttl)

	store = NewStore(nil, 30*time.Minute, zerolog.Nop())
	assert.Equal(t, 30*time.Minute, store.ttl)
}
