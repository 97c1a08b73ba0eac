package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arnavk09/quickkart-backend/internal/auth"
)

// sessionCookieName is the cookie the frontend stores the session token under.
const sessionCookieName = "token"

// contextKey is a private type so no other package can collide with our keys.
type contextKey string

var identityContextKey = contextKey("identity")

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID string
	Email  string
}

// RequireAuth verifies the session token cookie and injects the caller's
// identity into the request context. Requests without a cookie get
// {"message":"Unauthorized"}, requests with a bad token {"message":"Invalid token"},
// both 401. The middleware never touches the store.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w, "Unauthorized")
				return
			}

			claims, err := auth.Verify(cookie.Value, secret)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			ctx := ContextWithIdentity(r.Context(), Identity{UserID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated identity. Only valid on
// requests that passed RequireAuth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}

// ContextWithIdentity injects an identity directly; used by tests.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
