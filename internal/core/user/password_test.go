package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("kata-sandi-rahasia")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"), "expected PHC argon2id prefix, got %s", encoded)

	ok, err := VerifyPassword("kata-sandi-rahasia", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("kata-sandi-salah", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltVaries(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
}

func TestVerifyPassword_Malformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"plain-sha256-hex",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$not-base64!!$aGFzaA",
	}

	for _, encoded := range cases {
		_, err := VerifyPassword("anything", encoded)
		assert.Error(t, err, "encoded %q should be rejected", encoded)
	}
}
