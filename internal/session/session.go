// Package session issues and verifies the signed tokens that back a
// caregiver's login session.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/terraincognita07/showerbuddy/internal/models"
)

const (
	DefaultTTL     = 7 * 24 * time.Hour
	minSecretBytes = 32
)

var (
	ErrSecretTooShort = errors.New("session secret must be at least 32 bytes")
	ErrInvalidToken   = errors.New("invalid session token")
)

type UserFinder interface {
	FindByID(userID uint) (models.User, error)
}

type claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if len(secret) < minSecretBytes {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token whose subject is the caregiver's id.
func (manager *Manager) Issue(user models.User) (string, error) {
	userID := user.GetID()
	if userID == 0 {
		return "", errors.New("cannot issue session for unsaved user")
	}

	now := manager.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(manager.ttl)),
		},
	})
	signed, err := token.SignedString(manager.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Authenticate verifies token and loads its caregiver. The returned user
// reports IsAuthenticated.
func (manager *Manager) Authenticate(token string, users UserFinder) (models.User, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return manager.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(manager.now),
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if parsed.Subject != strconv.FormatUint(uint64(parsed.UserID), 10) {
		return models.User{}, ErrInvalidToken
	}

	user, err := users.FindByID(parsed.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("load session user: %w", err)
	}

	authenticatedAt := manager.now()
	user.AuthenticatedAt = &authenticatedAt
	return user, nil
}
