package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	grpcserver "github.com/atinyakov/fridgebook/internal/app/server/grpc"
	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/mocks"
	"github.com/atinyakov/fridgebook/internal/session"
	"github.com/atinyakov/fridgebook/internal/storage"
)

func startServer(t *testing.T) grpcserver.BookmarksClient {
	t.Helper()
	logger := zap.NewNop()
	store := storage.CreateMemoryStorage()
	require.NoError(t, store.SetFields(context.Background(), storage.RecipeDoc("52772"), map[string]any{
		"strMeal":         "Teriyaki Chicken Casserole",
		"strInstructions": "Bake.",
	}))

	recipes := service.NewRecipeService(store, mocks.NewMockMealDB(gomock.NewController(t)), logger)
	srv := grpcserver.New("", "", zaptest.NewLogger(t), grpcserver.Services{
		Auth:      service.NewAuth("secret", store),
		Bookmarks: service.NewBookmarkService(store, recipes, logger, 2),
		Recipes:   recipes,
		System:    service.NewSystemService(store),
	})

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpcserver.NewBookmarksClient(conn)
}

func TestRun_AnonymousToggleThenReopen(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	var out bytes.Buffer
	err := run(ctx, client, &options{RecipeID: "52772", Toggle: true}, &out, zaptest.NewLogger(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "session token: "))
	assert.Equal(t, "recipe:52772 ["+session.LabelAdd+"]", lines[1])
	assert.Equal(t, "recipe:52772 ["+session.LabelRemove+"]", lines[2])

	token := strings.TrimPrefix(lines[0], "session token: ")

	out.Reset()
	err = run(ctx, client, &options{Token: token, RecipeID: "52772"}, &out, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "recipe:52772 ["+session.LabelRemove+"]\n", out.String())
}

func TestRun_RejectedToken(t *testing.T) {
	client := startServer(t)

	err := run(context.Background(), client, &options{Token: "forged", RecipeID: "52772"}, io.Discard, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

// downToggle is a client whose Toggle always fails.
type downToggle struct {
	grpcserver.BookmarksClient
}

func (downToggle) Toggle(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unavailable, "down")
}

func TestRun_ToggleFailureShowsError(t *testing.T) {
	client := downToggle{startServer(t)}

	var out bytes.Buffer
	err := run(context.Background(), client, &options{FridgeID: "f1", RecipeID: "r1", Toggle: true}, &out, zap.NewNop())
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Contains(t, out.String(), "fridge:f1:r1 ["+session.LabelFailure+"]")
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-a", "host:1", "-fridge", "f1", "-recipe", "r1", "-toggle"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, &options{Address: "host:1", FridgeID: "f1", RecipeID: "r1", Toggle: true, LogLevel: "warn"}, opts)

	_, err = parseArgs([]string{"-recipe", "a:b"}, io.Discard)
	assert.Error(t, err)

	_, err = parseArgs([]string{"-recipe", "r1", "-fridge", "fridge"}, io.Discard)
	assert.Error(t, err)

	var usage bytes.Buffer
	_, err = parseArgs([]string{"-h"}, &usage)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, usage.String(), "-recipe")
}

func TestTokenUserID(t *testing.T) {
	token, userID, err := service.NewAuth("secret", storage.CreateMemoryStorage()).BuildJWTString(context.Background())
	require.NoError(t, err)

	got, err := tokenUserID(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = tokenUserID("not-a-jwt")
	assert.Error(t, err)
}
