package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("abc12!")
	require.NoError(t, err)
	require.NotEqual(t, "abc12!", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$10$"))

	require.True(t, VerifyPassword(hash, "abc12!"))
	require.False(t, VerifyPassword(hash, "abc13!"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("abc12!")
	require.NoError(t, err)

	second, err := HashPassword("abc12!")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	require.False(t, VerifyPassword("not-a-hash", "abc12!"))
}
