package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia-123", hash)

	assert.True(t, CheckPassword(hash, "rahasia-123"))
	assert.False(t, CheckPassword(hash, "salah"))
	assert.False(t, CheckPassword("bukan-hash", "rahasia-123"))
}
