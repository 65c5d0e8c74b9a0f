// Package tokens issues and verifies HS256 session tokens.
package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
)

const issuer = "storeadmin"

// Claims are the session fields carried in a token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session is a verified token's identity.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Issuer signs and verifies session tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewIssuer creates an Issuer.
func NewIssuer(secret string, ttl time.Duration, clk clock.Clock) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, clock: clk}
}

// Issue signs a token for user.
func (i *Issuer) Issue(user *domain.User) (string, time.Time, error) {
	now := i.clock.Now()
	expires := now.Add(i.ttl)
	claims := &Claims{
		UserID: user.ID(),
		Email:  user.Email(),
		Name:   user.Name(),
		Role:   user.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify checks signature, algorithm and expiry, returning domain.ErrInvalidToken on any failure.
func (i *Issuer) Verify(token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &Session{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
