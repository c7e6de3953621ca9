package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"vattours/server/internal/auth"
)

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by an upstream proxy
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := auth.SetRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
