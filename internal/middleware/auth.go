package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/biasbuster/api/internal/auth"
	"github.com/biasbuster/api/internal/store"
	"github.com/biasbuster/api/internal/utils"
)

// Authenticator resolves the current user from a bearer token. Every
// protected endpoint runs through RequireUser before its handler.
type Authenticator struct {
	Tokens *auth.TokenService
	Users  *store.UserStore
}

func NewAuthenticator(tokens *auth.TokenService, users *store.UserStore) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users}
}

func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			utils.Detail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.Detail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			utils.Detail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		email, err := a.Tokens.Validate(tokenStr)
		if err != nil {
			utils.Detail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		// A token can outlive its account; a missing user looks the
		// same as a bad token.
		user, err := a.Users.GetByEmail(r.Context(), email)
		if err != nil {
			utils.Detail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), utils.CtxUserKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
