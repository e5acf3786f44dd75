package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, password.Verify("correct horse battery staple", hash))
	assert.ErrorIs(t, password.Verify("wrong password", hash), password.ErrInvalidPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("secret", ""), password.ErrInvalidPassword)
}
