// Package middleware provides HTTP middleware that identifies the user,
// logs requests, compresses responses and guards internal endpoints.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
)

// ContextKey is a custom type used for keys in the context.
// It helps prevent collisions in context keys.
type ContextKey string

// UserIDKey is the key used to store and retrieve the user ID from the context.
const UserIDKey ContextKey = "userID"

// TokenCookie names the cookie carrying the session JWT.
const TokenCookie = "token"

// InjectUserID adds the user ID to the request context, making it accessible for
// downstream handlers.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// UserID returns the user id stored in ctx, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

// WithJWT identifies anonymous users by a session cookie. A request without
// a usable cookie gets a freshly issued token. Requests already identified
// by an earlier middleware pass through untouched.
func WithJWT(auth service.AuthIface, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserID(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			if cookie, err := r.Cookie(TokenCookie); err == nil {
				claims, err := auth.ParseClaims(cookie)
				if err == nil {
					next.ServeHTTP(w, InjectUserID(r, claims.UserID))
					return
				}
				log.Debug("discarding session cookie", zap.Error(err))
			}

			tokenString, userID, err := auth.BuildJWTString(r.Context())
			if err != nil {
				log.Error("cannot issue session token", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     TokenCookie,
				Value:    tokenString,
				Expires:  time.Now().Add(service.TokenExp),
				HttpOnly: true,
				Path:     "/",
			})

			next.ServeHTTP(w, InjectUserID(r, userID))
		})
	}
}

// WithIDToken identifies signed-in users by a bearer ID token in the
// Authorization header. Requests without the header pass through, an
// invalid token is rejected with 401.
func WithIDToken(verifier service.TokenVerifier, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			uid, err := verifier.VerifyIDToken(r.Context(), token)
			if err != nil {
				log.Info("rejected id token", zap.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, InjectUserID(r, uid))
		})
	}
}
