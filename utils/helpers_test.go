package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broskii-backend/utils"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ali@example.com",
		"ali.hassan+ski@sub.example.co",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		assert.True(t, utils.IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-at.example.com",
		"no-tld@example",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, utils.IsValidEmail(email), email)
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := utils.GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32)

	other, err := utils.GenerateSecureToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateSecureToken_InvalidLength(t *testing.T) {
	_, err := utils.GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("BROSKII_TEST_KEY", "value")
	assert.Equal(t, "value", utils.EnvOrDefault("BROSKII_TEST_KEY", "fallback"))

	t.Setenv("BROSKII_TEST_KEY", "   ")
	assert.Equal(t, "fallback", utils.EnvOrDefault("BROSKII_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", utils.EnvOrDefault("BROSKII_TEST_MISSING", "fallback"))
}
