package middleware

import (
	"context"
	"net/http"

	"vietcards/internal/model"
	"vietcards/internal/webutil"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// SessionAuthenticator is the slice of the auth service the middleware
// needs. Declared here to avoid a middleware -> service import cycle.
type SessionAuthenticator interface {
	Enabled() bool
	Authenticate(ctx context.Context, token string) bool
}

// SessionAuthMiddleware rejects requests without a valid session cookie.
// When auth is disabled (no password configured) every request passes.
func SessionAuthMiddleware(auth SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			logger := GetLogger(r.Context())

			var token string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				token = cookie.Value
			}

			if !auth.Authenticate(r.Context(), token) {
				logger.Warn("Rejected unauthenticated request", "path", r.URL.Path)
				appErr := model.NewAppError("UNAUTHORIZED", "Not authenticated.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
