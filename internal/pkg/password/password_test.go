package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("pass1")
	require.NoError(t, err)

	assert.NotEqual(t, "pass1", hash, "hash must never equal the plaintext")
	assert.True(t, Verify("pass1", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("pass1")
	require.NoError(t, err)
	second, err := Hash("pass1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("pass1", first))
	assert.True(t, Verify("pass1", second))
}
