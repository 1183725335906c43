package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/gw-evault/internal/jwt"
	"github.com/sbilibin2017/gw-evault/internal/logger"
)

// RequireAdmin rejects requests whose claims lack the admin capability.
// Must be mounted after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		if !claims.IsAdmin {
			logger.Log.Warnw("admin access denied", "userID", claims.UserID, "uri", r.RequestURI)
			writeError(w, http.StatusForbidden, "Not authorized as an admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}
