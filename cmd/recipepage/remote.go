package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"

	grpcserver "github.com/atinyakov/fridgebook/internal/app/server/grpc"
	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/intercepters"
	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/session"
)

// remoteBookmarks serves a recipe page from the gRPC service. Calls are made
// with the token the user signed in with.
type remoteBookmarks struct {
	client grpcserver.BookmarksClient

	mu     sync.Mutex
	tokens map[string]string
}

func newRemoteBookmarks(client grpcserver.BookmarksClient) *remoteBookmarks {
	return &remoteBookmarks{
		client: client,
		tokens: make(map[string]string),
	}
}

// SignIn checks token against the server and returns the user behind it.
// An empty token starts an anonymous session; the issued token is returned.
func (r *remoteBookmarks) SignIn(ctx context.Context, token string) (session.User, string, error) {
	if token != "" {
		ctx = withToken(ctx, token)
	}

	var trailer metadata.MD
	if _, err := r.client.List(ctx, &emptypb.Empty{}, grpc.Trailer(&trailer)); err != nil {
		return session.User{}, "", fmt.Errorf("sign in: %w", err)
	}
	if token == "" {
		issued := trailer.Get(intercepters.NewTokenTrailer)
		if len(issued) == 0 {
			return session.User{}, "", errors.New("sign in: server issued no session token")
		}
		token = issued[0]
	}

	userID, err := tokenUserID(token)
	if err != nil {
		return session.User{}, "", err
	}

	r.mu.Lock()
	r.tokens[userID] = token
	r.mu.Unlock()

	return session.User{ID: userID}, token, nil
}

func (r *remoteBookmarks) IsBookmarked(ctx context.Context, userID string, key bookmark.Key) (bool, error) {
	ctx, err := r.outgoing(ctx, userID)
	if err != nil {
		return false, err
	}

	reply, err := r.client.GetRecipe(ctx, grpcserver.NewRecipeRef(key.FridgeID, key.RecipeID))
	if err != nil {
		return false, err
	}

	var view models.RecipeView
	if err := grpcserver.FromStruct(reply, &view); err != nil {
		return false, err
	}
	return view.Bookmarked, nil
}

func (r *remoteBookmarks) Toggle(ctx context.Context, userID string, key bookmark.Key) (bool, error) {
	ctx, err := r.outgoing(ctx, userID)
	if err != nil {
		return false, err
	}

	reply, err := r.client.Toggle(ctx, grpcserver.NewRecipeRef(key.FridgeID, key.RecipeID))
	if err != nil {
		return false, err
	}

	var st models.BookmarkStatus
	if err := grpcserver.FromStruct(reply, &st); err != nil {
		return false, err
	}
	return st.Bookmarked, nil
}

func (r *remoteBookmarks) outgoing(ctx context.Context, userID string) (context.Context, error) {
	r.mu.Lock()
	token, ok := r.tokens[userID]
	r.mu.Unlock()

	if !ok {
		return ctx, fmt.Errorf("user %s is not signed in", userID)
	}
	return withToken(ctx, token), nil
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

// tokenUserID reads the user id out of a token the server has already
// accepted. Session tokens and Firebase ID tokens both carry user_id.
func tokenUserID(token string) (string, error) {
	var claims service.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimPrefix(token, "Bearer "), &claims); err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}
	return "", errors.New("read token: no user id")
}
