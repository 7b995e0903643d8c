package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateJWT("user-1", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateJWT(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "student", claims.Role)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateJWT("user-1", "instructor")
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateJWT(token)
	require.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").ValidateJWT("not.a.token")
	require.Error(t, err)
}
