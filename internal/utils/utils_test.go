package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHash(t *testing.T) {
	PasswordHashCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordHashCost = bcrypt.DefaultCost })

	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	ok, err := CheckPasswordHash("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPasswordHash("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPasswordHash("secret123", "not-a-hash")
	assert.Error(t, err)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := TokenIssuer{Secret: "test-secret", Expiry: time.Hour, Issuer: "networth-test"}

	token, expiresAt, err := issuer.Issue("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := ParseSubject(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)

	_, err = ParseSubject(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := TokenIssuer{
		Secret: "test-secret",
		Expiry: time.Minute,
		Now:    func() time.Time { return time.Now().Add(-time.Hour) },
	}
	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = ParseSubject(token, "test-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseSubject_MissingSubject(t *testing.T) {
	token, _, err := TokenIssuer{Secret: "s", Expiry: time.Hour}.Issue("")
	require.NoError(t, err)

	_, err = ParseSubject(token, "s")
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestBundleSchema(t *testing.T) {
	schema, err := NewBundleSchema()
	require.NoError(t, err)

	details, err := SchemaErrors(schema, []byte(`{"version": 1, "accounts": [{"name": "Cash", "category": "asset", "type": "cash", "balance": 10}]}`))
	require.NoError(t, err)
	assert.Empty(t, details)

	details, err = SchemaErrors(schema, []byte(`{"version": 1, "accounts": [{"name": "Cash"}]}`))
	require.NoError(t, err)
	assert.NotEmpty(t, details)
	assert.Contains(t, JoinDetails(details), "balance")

	details, err = SchemaErrors(schema, []byte(`{"accounts": "nope"}`))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(details), 2)

	_, err = SchemaErrors(schema, []byte(`{not json`))
	assert.Error(t, err)
}
