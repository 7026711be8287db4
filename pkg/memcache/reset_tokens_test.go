package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokensSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok-1", "user@example.com", time.Minute)

	email, ok := store.Peek("tok-1")
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email)

	assert.Equal(t, "user@example.com", store.Consume("tok-1"))

	// Consumed tokens are gone.
	_, ok = store.Peek("tok-1")
	assert.False(t, ok)
	assert.Equal(t, "", store.Consume("tok-1"))
}

func TestResetTokensExpiry(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok-2", "user@example.com", -time.Second)

	_, ok := store.Peek("tok-2")
	assert.False(t, ok)
	assert.Equal(t, "", store.Consume("tok-2"))
}
