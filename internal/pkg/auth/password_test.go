package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, CheckPassword(hashed, "s3cret-pass"))
	assert.False(t, CheckPassword(hashed, "wrong-pass"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret-pass"))
}
