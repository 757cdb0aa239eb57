package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTIssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.Issue("user-1", "anna@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "anna@example.com", claims.Email)
}

func TestJWTVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Minute)
	verifier := NewJWTManager("secret-b", time.Minute)

	token, err := issuer.Issue("user-1", "anna@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTVerifyRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Issue("user-1", "anna@example.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
}

func TestJWTVerifyRejectsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	_, err := m.Verify("not.a.token")
	require.Error(t, err)
}
