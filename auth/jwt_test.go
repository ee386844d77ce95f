package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("segredo", "maria")
	require.NoError(t, err)

	claims, err := ValidateToken("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Username)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("segredo", "maria")
	require.NoError(t, err)

	_, err = ValidateToken("outro", token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("segredo", "nao-e-um-token")
	assert.Error(t, err)
}
