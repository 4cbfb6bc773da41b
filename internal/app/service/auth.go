// Package service holds the bookmark, recipe and fridge services and the
// authentication helpers used by both transports.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/atinyakov/fridgebook/internal/storage"
)

// Claims represents the claims that are included in the JWT token.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is a custom claim for storing the user ID.
	UserID string `json:"user_id"`
}

// TokenExp defines the expiration time of the JWT token (1 year).
const TokenExp = time.Hour * 24 * 365

// maxIDAttempts bounds the search for an unused user id.
const maxIDAttempts = 5

var ErrInvalidToken = errors.New("invalid token or claims")

// Auth issues and parses the JWT identifying anonymous users.
type Auth struct {
	secret []byte
	store  Storage
}

func NewAuth(secret string, store Storage) *Auth {
	return &Auth{
		secret: []byte(secret),
		store:  store,
	}
}

// BuildJWTString generates a user id that has no user document yet and
// returns a signed token for it along with the id.
func (a *Auth) BuildJWTString(ctx context.Context) (string, string, error) {
	userID, err := a.freshUserID(ctx)
	if err != nil {
		return "", "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", "", err
	}

	return tokenString, userID, nil
}

func (a *Auth) freshUserID(ctx context.Context) (string, error) {
	for range maxIDAttempts {
		id := uuid.NewString()
		if a.store == nil {
			return id, nil
		}

		_, err := a.store.GetDocument(ctx, storage.UserDoc(id))
		if errors.Is(err, storage.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking user id: %w", err)
		}
	}
	return "", errors.New("could not allocate a user id")
}

// ParseClaims parses the JWT token from the provided HTTP cookie.
func (a *Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	return a.ParseRawJWT(c.Value)
}

func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
