package middleware

import (
	"context"
	"errors"
	"net/http"

	"ledgerhub/internal/common"
	"ledgerhub/internal/common/security"
	"ledgerhub/internal/domain/model"
	"ledgerhub/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const userCtxKey contextKey = "currentUser"

// Authenticator resolves the verified token (placed in context by
// jwtauth.Verifier) to a full user row. A structurally valid token whose
// user no longer exists is a 404, not a 401: the account may have been
// removed while the token was still time-valid.
func Authenticator(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			username, err := security.SubjectFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
				return
			}

			user, err := userRepo.FindByUsername(r.Context(), username)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					common.RespondWithError(w, http.StatusNotFound, "User not found")
				} else {
					common.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve user")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the user resolved by Authenticator.
func CurrentUser(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*model.User)
	return user, ok
}
