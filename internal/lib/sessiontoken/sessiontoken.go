package sessiontoken

import (
	"errors"
	"time"

	"galleria/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
	ErrTokenExpired       = errors.New("token expired")
)

// Manager is an issue/verify capability pair over opaque signed session
// tokens. The encoding (HS256 JWT) is an implementation detail; call
// sites only ever see the opaque string.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the fixed validity window of issued tokens.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a new session token embedding the given identity.
func (m *Manager) Issue(email string) (models.AdminSession, error) {
	now := time.Now()

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = email
	claims["jti"] = uuid.NewString() // keeps tokens issued in the same second distinct
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(m.ttl).Unix()

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return models.AdminSession{}, err
	}

	return models.AdminSession{
		Token:     signed,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}, nil
}

// Verify checks the signature and validity window and returns the
// embedded identity.
func (m *Manager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidTokenClaims
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", ErrInvalidTokenClaims
	}

	return email, nil
}
