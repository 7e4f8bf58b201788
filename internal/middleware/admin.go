package middleware

import (
	"crypto/subtle"
	"net/http"

	"flowworks-backend/internal/auth"
	"flowworks-backend/internal/transport"
)

// AdminAuth admits requests carrying the admin API key header or a valid
// admin access cookie.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" {
				if got := r.Header.Get("X-Admin-Key"); got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			if manager != nil {
				cookie, err := r.Cookie(auth.AccessCookie)
				if err == nil && cookie.Value != "" {
					claims, err := manager.Parse(cookie.Value)
					if err == nil && claims.Role == auth.RoleAdmin && claims.Kind == auth.KindAccess {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}
