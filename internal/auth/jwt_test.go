package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret-key"
	testIssuer   = "inventory-api"
	testAudience = "inventory-api-clients"
)

func newTestManager() *TokenManager {
	return NewTokenManager(testSecret, testIssuer, testAudience)
}

func TestIssueTokenClaims(t *testing.T) {
	m := newTestManager()

	before := time.Now()
	tokenString, err := m.IssueToken("alice")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice", claims["name"])
	assert.Equal(t, testIssuer, claims["iss"])
	assert.Equal(t, testAudience, claims["aud"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(TokenTTL/time.Second), exp-iat, "expiry must be exactly 1h after issuance")
	assert.GreaterOrEqual(t, iat, before.Unix())
}

func TestValidateTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	tokenString, err := m.IssueToken("bob")
	require.NoError(t, err)

	username, err := m.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	tokenString, err := NewTokenManager("other-secret", testIssuer, testAudience).IssueToken("alice")
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongIssuerOrAudience(t *testing.T) {
	m := newTestManager()

	tokenString, err := NewTokenManager(testSecret, "someone-else", testAudience).IssueToken("alice")
	require.NoError(t, err)
	_, err = m.ValidateToken(tokenString)
	assert.Error(t, err)

	tokenString, err = NewTokenManager(testSecret, testIssuer, "other-clients").IssueToken("alice")
	require.NoError(t, err)
	_, err = m.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"name": "alice",
		"iss":  testIssuer,
		"aud":  testAudience,
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestManager().ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := newTestManager().ValidateToken("not.a.token")
	assert.Error(t, err)
}
