package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"explorer/internal/auth"
	"explorer/internal/httputil"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid bearer token and stores the token's
// subject as the request user ID. Paths listed in public bypass the check;
// CORS preflight requests are handled before this middleware runs.
func Auth(verifier auth.JWTVerifier, logger *slog.Logger, public ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(public))
	for _, path := range public {
		skip[path] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := verifier.VerifyToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				logger.Debug("request unauthorized", "path", r.URL.Path, "error", err)
				httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}
