package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := Generate("marcos", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Validate(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "marcos", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "loanguard", claims.Issuer)
}

func TestValidateExpired(t *testing.T) {
	token, err := Generate("marcos", testSecret, -1)
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := Generate("marcos", testSecret, 15)
	require.NoError(t, err)

	_, err = Validate(token, "another_secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateMalformed(t *testing.T) {
	_, err := Validate("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = Validate("", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateMissingSubject(t *testing.T) {
	token, err := Generate("", testSecret, 15)
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
