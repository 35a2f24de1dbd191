package authenticator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/roadmapper/internal/config"
)

func newTestAuthenticator(expireMinutes int) *Authenticator {
	return New(&config.Config{
		SECRET_KEY:                  "test-secret",
		ACCESS_TOKEN_EXPIRE_MINUTES: expireMinutes,
	})
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	auth := newTestAuthenticator(30)

	token, err := auth.CreateAccessToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := auth.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	expired := newTestAuthenticator(-1)

	token, err := expired.CreateAccessToken("alice@example.com")
	require.NoError(t, err)

	_, err = newTestAuthenticator(30).VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	other := New(&config.Config{
		SECRET_KEY:                  "other-secret",
		ACCESS_TOKEN_EXPIRE_MINUTES: 30,
	})

	token, err := other.CreateAccessToken("alice@example.com")
	require.NoError(t, err)

	_, err = newTestAuthenticator(30).VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	auth := newTestAuthenticator(30)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := auth.VerifyAccessToken(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerifyAccessToken_MissingSubject(t *testing.T) {
	auth := newTestAuthenticator(30)

	token, err := auth.CreateAccessToken("")
	require.NoError(t, err)

	_, err = auth.VerifyAccessToken(token)
	assert.Error(t, err)
}
