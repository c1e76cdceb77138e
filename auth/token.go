package auth

import (
	"fmt"
	"time"

	"party-lab/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "party-lab"

// Claims is the payload of a session token.
type Claims struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) Session() domain.Session {
	return domain.Session{UserID: c.UserID, Username: c.Username, Role: c.Role}
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration, now: time.Now}
}

// Duration is how long an issued token stays valid.
func (t *TokenIssuer) Duration() time.Duration {
	return t.duration
}

// Issue creates a signed token for the session.
func (t *TokenIssuer) Issue(session domain.Session) (string, error) {
	now := t.now()
	claims := Claims{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   session.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature, issuer and expiry and returns the session carried by the token.
func (t *TokenIssuer) Verify(token string) (domain.Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Session{}, err
	}
	if !parsed.Valid || !claims.Role.Valid() {
		return domain.Session{}, fmt.Errorf("invalid session token")
	}
	return claims.Session(), nil
}
