package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"
	"github.com/truethari/SocialMedia-API/app/services"

	"github.com/gorilla/mux"
)

type contextKey string

const (
	callerKey  contextKey = "caller"
	postKey    contextKey = "post"
	commentKey contextKey = "comment"
	userKey    contextKey = "user"
)

// TokenVerifier turns a bearer token into the identity it asserts.
type TokenVerifier interface {
	ParseToken(token string) (*services.AuthUser, error)
}

// UserFinder confirms a token identity against the user store.
type UserFinder interface {
	GetByID(id int) (*models.User, error)
}

// Authenticate rejects requests without a valid bearer token. A token that
// verifies but names a user no longer in the store is rejected the same way
// a bad signature is: the request never reaches a handler with a caller the
// store does not know.
func Authenticate(verifier TokenVerifier, users UserFinder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				jsonError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				jsonError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			identity, err := verifier.ParseToken(token)
			if err != nil {
				jsonError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if _, err := users.GetByID(identity.ID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					jsonError(w, http.StatusUnauthorized, "unknown identity")
					return
				}
				jsonError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			ctx := WithCaller(r.Context(), identity.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerID returns the authenticated user ID set by Authenticate.
func CallerID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(callerKey).(int)
	return id, ok
}

// WithCaller returns a context carrying an authenticated user ID.
func WithCaller(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, callerKey, id)
}
