package main

import (
	"net/http"
	"strings"
)

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr)
			if !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// AdminTokenMiddleware gates the admin endpoints behind a valid bearer token
// issued by the login endpoint.
func (app *application) AdminTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedResponse(w, r, "authorization header is missing")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			app.unauthorizedResponse(w, r, "authorization header is malformed")
			return
		}

		if _, err := app.authenticator.Verify(parts[1]); err != nil {
			app.unauthorizedResponse(w, r, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
