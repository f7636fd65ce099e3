package sessiontoken_test

import (
	"testing"
	"time"

	"galleria/internal/lib/sessiontoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := sessiontoken.New("test-secret", 7*24*time.Hour)

	sess, err := m.Issue("admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "admin@example.com", sess.Email)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), sess.ExpiresAt, time.Minute)

	email, err := m.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestVerify_Expired(t *testing.T) {
	m := sessiontoken.New("test-secret", -time.Minute)

	sess, err := m.Issue("admin@example.com")
	require.NoError(t, err)

	_, err = m.Verify(sess.Token)
	assert.ErrorIs(t, err, sessiontoken.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := sessiontoken.New("secret-a", time.Hour)
	verifier := sessiontoken.New("secret-b", time.Hour)

	sess, err := issuer.Issue("admin@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(sess.Token)
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	m := sessiontoken.New("test-secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}
