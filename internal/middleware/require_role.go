package middleware

import (
	"net/http"

	"vattours/server/internal/auth"
	"vattours/server/internal/constants"
)

// RequireRole gates a route group behind a minimum role. The whole admin
// namespace mounts behind RequireRole(constants.RoleAdmin).
func RequireRole(min constants.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized. Missing claims", http.StatusUnauthorized)
				return
			}

			if claims.Role().IsLessThan(min) {
				http.Error(w, "Forbidden. Need "+min.String()+" perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
