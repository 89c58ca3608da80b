package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	for _, plaintext := range []string{"password123", "raj", "s3cret!pass"} {
		digest, err := HashPassword(plaintext)
		require.NoError(t, err)

		assert.True(t, VerifyPassword(plaintext, digest))
		assert.False(t, VerifyPassword("other-"+plaintext, digest))
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	// Same plaintext, different digests: a salt is drawn per call.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("password123", first))
	assert.True(t, VerifyPassword("password123", second))
}

func TestVerifyFailsClosedOnMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("password123", ""))
	assert.False(t, VerifyPassword("password123", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("password123", "$2a$zz$broken"))
}
