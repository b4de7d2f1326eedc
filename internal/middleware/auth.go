package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

// TokenParser validates a bearer token and returns the claims baked into it.
type TokenParser interface {
	ParseToken(ctx context.Context, tokenString string) (*usecase.TokenClaims, error)
}

// JWTAuth rejects requests without a valid bearer token and stores the
// actor's identity in the request context for downstream handlers.
func JWTAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Missing or malformed Authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := parser.ParseToken(r.Context(), strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ActorIDCtxKey, claims.ActorID)
			ctx = context.WithValue(ctx, ActorEmailCtxKey, claims.Email)
			ctx = context.WithValue(ctx, ActorRoleCtxKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWT fills the actor identity into the context when a valid token
// is presented but lets anonymous requests through. Used on public pages
// that render differently for logged-in users.
func OptionalJWT(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				if claims, err := parser.ParseToken(r.Context(), strings.TrimPrefix(header, "Bearer ")); err == nil {
					ctx := context.WithValue(r.Context(), ActorIDCtxKey, claims.ActorID)
					ctx = context.WithValue(ctx, ActorEmailCtxKey, claims.Email)
					ctx = context.WithValue(ctx, ActorRoleCtxKey, claims.Role)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly must run after JWTAuth; it gates the moderation surface.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminContext(r.Context()) {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
