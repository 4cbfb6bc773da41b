package intercepters

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/middleware"
)

// NewTokenTrailer names the trailer carrying a freshly issued session token.
const NewTokenTrailer = "new-token"

// WithJWT identifies the caller from the authorization metadata. A session
// JWT is tried first, then a Firebase ID token when verifier is set. Callers
// without a token get a new session token in the trailer.
func WithJWT(auth service.AuthIface, verifier service.TokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var userID string

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeader := md.Get("authorization")

		if len(authHeader) == 0 {
			token, generatedID, err := auth.BuildJWTString(ctx)
			if err != nil {
				return nil, status.Errorf(codes.Internal, "failed to build JWT: %v", err)
			}
			userID = generatedID

			grpc.SetTrailer(ctx, metadata.Pairs(NewTokenTrailer, token))
		} else {
			tokenString := strings.TrimPrefix(authHeader[0], "Bearer ")

			claims, err := auth.ParseRawJWT(tokenString)
			switch {
			case err == nil:
				userID = claims.UserID
			case verifier != nil:
				uid, verr := verifier.VerifyIDToken(ctx, tokenString)
				if verr != nil {
					return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", verr)
				}
				userID = uid
			default:
				return nil, status.Errorf(codes.Unauthenticated, "invalid JWT: %v", err)
			}
		}

		ctx = context.WithValue(ctx, middleware.UserIDKey, userID)

		return handler(ctx, req)
	}
}
