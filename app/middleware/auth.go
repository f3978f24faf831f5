package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "tanzo-api/app/jwt"
	"tanzo-api/app/respond"
	"tanzo-api/app/services"
)

type ctxKey int

const userKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Users  *services.UserService
}

// RequireAuth resolves the bearer token to a user row and stores it in
// the request context. A token whose user has since been deleted fails.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			respond.Unauthorised(w)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(token)
		if err != nil {
			respond.Unauthorised(w)
			return
		}
		u, err := a.Users.GetUser(claims.UserID)
		if err != nil {
			respond.Unauthorised(w)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
