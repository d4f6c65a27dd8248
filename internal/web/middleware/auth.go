package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/pendencies/internal/config"
)

// APIKeyAuth validates the X-API-Key header against cfg.APIKeys when
// cfg.RequireAPIKey is set. A missing key is 401, an unknown key 403.
func APIKeyAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAPIKey {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			switch {
			case apiKey == "":
				slog.Warn("auth: missing API key", "path", r.URL.Path, "method", r.Method, "remote_addr", r.RemoteAddr)
				denyJSON(w, http.StatusUnauthorized, "missing API key", "AUTH001")
			case !isValidAPIKey(apiKey, cfg.APIKeys):
				slog.Warn("auth: invalid API key", "path", r.URL.Path, "method", r.Method, "remote_addr", r.RemoteAddr)
				denyJSON(w, http.StatusForbidden, "invalid API key", "AUTH002")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func denyJSON(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `","message":"` + message + `","code":"` + code + `"}`))
}

// isValidAPIKey compares key against every configured key in constant time,
// so timing does not reveal which key matched.
func isValidAPIKey(key string, validKeys []string) bool {
	valid := 0
	for _, validKey := range validKeys {
		valid |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return valid == 1
}
