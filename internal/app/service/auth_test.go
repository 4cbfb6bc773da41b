package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/mocks"
	"github.com/atinyakov/fridgebook/internal/storage"
)

const testSecret = "supersecretkey"

func TestBuildJWTString(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStorage(ctrl)

	// Unused user id on the first try
	store.EXPECT().
		GetDocument(gomock.Any(), gomock.Any()).
		Return(storage.Document{}, storage.ErrNotFound)

	auth := service.NewAuth(testSecret, store)

	tokenStr, userID, err := auth.BuildJWTString(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	require.NotEmpty(t, userID)

	token, err := jwt.ParseWithClaims(tokenStr, &service.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*service.Claims)
	require.True(t, ok)
	require.Equal(t, userID, claims.UserID)
	require.WithinDuration(t, time.Now().Add(service.TokenExp), claims.ExpiresAt.Time, time.Minute)
}

func TestBuildJWTString_RetriesTakenID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)

	gomock.InOrder(
		store.EXPECT().GetDocument(gomock.Any(), gomock.Any()).Return(storage.Document{ID: "taken"}, nil),
		store.EXPECT().GetDocument(gomock.Any(), gomock.Any()).Return(storage.Document{}, storage.ErrNotFound),
	)

	_, userID, err := service.NewAuth(testSecret, store).BuildJWTString(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, userID)
}

func TestBuildJWTString_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)

	store.EXPECT().GetDocument(gomock.Any(), gomock.Any()).Return(storage.Document{}, errors.New("unavailable"))

	_, _, err := service.NewAuth(testSecret, store).BuildJWTString(context.Background())
	require.Error(t, err)
}

func TestParseClaims(t *testing.T) {
	auth := service.NewAuth(testSecret, nil)

	t.Run("valid token", func(t *testing.T) {
		userID := "test-user-id"
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(service.TokenExp)),
			},
			UserID: userID,
		})

		signedToken, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		claims, err := auth.ParseClaims(&http.Cookie{Name: "token", Value: signedToken})
		require.NoError(t, err)
		require.Equal(t, userID, claims.UserID)
	})

	t.Run("invalid token", func(t *testing.T) {
		claims, err := auth.ParseClaims(&http.Cookie{Name: "token", Value: "invalid.token.here"})
		require.Error(t, err)
		require.Nil(t, claims)
	})

	t.Run("other secret", func(t *testing.T) {
		signed, _, err := service.NewAuth("another-secret", nil).BuildJWTString(context.Background())
		require.NoError(t, err)

		_, err = auth.ParseRawJWT(signed)
		require.Error(t, err)
	})

	t.Run("missing user id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = auth.ParseRawJWT(signed)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
