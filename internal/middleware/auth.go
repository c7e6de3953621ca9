package middleware

import (
	"net/http"
	"strings"

	"vattours/server/internal/auth"
	"vattours/server/internal/common"
)

// AuthMiddleware validates the bearer session token and places typed claims
// in the request context. Identity issuance happens at /auth/session.
func AuthMiddleware(sessionSvc *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			session, err := sessionSvc.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
				return
			}

			claims := &auth.SessionClaims{
				UserUUID:   session.UserID,
				RoleValue:  session.Role,
				SessionUID: session.SessionID,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
