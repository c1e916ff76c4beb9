package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. There is no refresh or
// revocation; tokens simply expire.
const TokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates HS256 bearer tokens carrying a single
// username claim plus issuer and audience.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenManager(secret, issuer, audience string) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// IssueToken creates a signed token for the given username, expiring
// exactly one hour from now.
func (m *TokenManager) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"name": username,
		"iss":  m.issuer,
		"aud":  m.audience,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a token string, checking the
// signature, issuer, audience and lifetime. It returns the username claim.
func (m *TokenManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err // expired, malformed, or wrong issuer/audience/key
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	username, ok := claims["name"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}
