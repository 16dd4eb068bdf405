package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
}

func TestGeneratePassword_Length(t *testing.T) {
	pw, err := utils.GeneratePassword(16)
	require.NoError(t, err)
	assert.Len(t, pw, 16)

	// Non-positive lengths fall back to the default one-time password size.
	pw, err = utils.GeneratePassword(0)
	require.NoError(t, err)
	assert.Len(t, pw, 10)
}

func TestGeneratePassword_AvoidsAmbiguousCharacters(t *testing.T) {
	pw, err := utils.GeneratePassword(200)
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(pw, "0O1Il"), "password %q contains ambiguous characters", pw)
}

func TestGeneratePassword_Varies(t *testing.T) {
	a, err := utils.GeneratePassword(10)
	require.NoError(t, err)
	b, err := utils.GeneratePassword(10)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
