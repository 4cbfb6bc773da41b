// Package grpc exposes bookmarks and recipe pages over gRPC.
package grpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/intercepters"
	"github.com/atinyakov/fridgebook/internal/middleware"
	"github.com/atinyakov/fridgebook/internal/models"
)

const requestTimeout = 3 * time.Second

// Services are the dependencies of the gRPC server. Verifier may be nil.
type Services struct {
	Auth      service.AuthIface
	Verifier  service.TokenVerifier
	Bookmarks service.BookmarkServiceIface
	Recipes   service.RecipeServiceIface
	System    service.SystemServiceIface
}

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	addr       string
	logger     *zap.Logger
}

// New creates a new gRPC server instance. Stats is only served to callers
// inside trustedSubnet.
func New(addr, trustedSubnet string, logger *zap.Logger, svc Services) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger)),
			intercepters.SubnetIPInterceptor,
			intercepters.WithTrustedSubnet(trustedSubnet, Bookmarks_Stats_FullMethodName),
			intercepters.WithJWT(svc.Auth, svc.Verifier),
		),
	)

	RegisterBookmarksServer(s, &BookmarksService{
		Bookmarks: svc.Bookmarks,
		Recipes:   svc.Recipes,
		System:    svc.System,
		Logger:    logger,
	})

	return &Server{
		grpcServer: s,
		addr:       addr,
		logger:     logger,
	}
}

// Start listens on the configured address and serves until stopped.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.logger.Error("gRPC server failed to listen", zap.Error(err))
		return err
	}

	s.logger.Info("gRPC server listening", zap.String("addr", s.addr))
	return s.Serve(lis)
}

// Serve accepts connections on lis.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// BookmarksService implements BookmarksServer on top of the services.
type BookmarksService struct {
	Bookmarks service.BookmarkServiceIface
	Recipes   service.RecipeServiceIface
	System    service.SystemServiceIface
	Logger    *zap.Logger
}

func (s *BookmarksService) Toggle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	key, err := keyFor(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	bookmarked, err := s.Bookmarks.Toggle(ctx, userID, key)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return s.reply(models.BookmarkStatus{Key: key.String(), Bookmarked: bookmarked})
}

func (s *BookmarksService) List(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	list, err := s.Bookmarks.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return s.reply(RecipeList{Recipes: list})
}

// GetRecipe returns the recipe page with the caller's bookmark state.
func (s *BookmarksService) GetRecipe(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	key, err := keyFor(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	r, err := s.Recipes.Get(ctx, key)
	if err != nil {
		return nil, s.toStatus(err)
	}

	bookmarked, err := s.Bookmarks.IsBookmarked(ctx, userID, key)
	if err != nil {
		s.Logger.Warn("cannot load bookmark state", zap.String("user", userID), zap.Error(err))
		bookmarked = false
	}

	return s.reply(service.BuildRecipeView(r, key, bookmarked))
}

func (s *BookmarksService) Stats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	stats, err := s.System.Stats(ctx)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.reply(stats)
}

func keyFor(req *structpb.Struct) (bookmark.Key, error) {
	fridgeID, recipeID := recipeRef(req)
	valid := func(id string) bool {
		return bookmark.ValidID(id) && !strings.Contains(id, "/")
	}

	if !valid(recipeID) || (fridgeID != "" && !valid(fridgeID)) {
		return bookmark.Key{}, status.Error(codes.InvalidArgument, "invalid recipe id")
	}
	return bookmark.For(fridgeID, recipeID), nil
}

func (s *BookmarksService) reply(v any) (*structpb.Struct, error) {
	out, err := ToStruct(v)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return out, nil
}

func (s *BookmarksService) toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidKey), errors.Is(err, service.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "recipe not found")
	case errors.Is(err, service.ErrToggleInFlight):
		return status.Error(codes.Aborted, err.Error())
	default:
		s.Logger.Error("gRPC call failed", zap.Error(err))
		return status.Error(codes.Internal, "could not load, please try again")
	}
}
