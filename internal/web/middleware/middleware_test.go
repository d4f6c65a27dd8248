package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JonMunkholm/pendencies/internal/config"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.RemoteAddr))
	})
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.SecurityConfig
		key        string
		wantStatus int
		wantCode   string
	}{
		{name: "disabled", cfg: config.SecurityConfig{}, wantStatus: http.StatusOK},
		{name: "missing key", cfg: config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, wantStatus: http.StatusUnauthorized, wantCode: "AUTH001"},
		{name: "wrong key", cfg: config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, key: "nope", wantStatus: http.StatusForbidden, wantCode: "AUTH002"},
		{name: "second key accepted", cfg: config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1", "k2"}}, key: "k2", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			h := APIKeyAuth(&cfg)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		remote  string
		headers map[string]string
		want    string
	}{
		{name: "untrusted peer ignored", trusted: []string{"10.0.0.0/8"}, remote: "203.0.113.9:5000", headers: map[string]string{"X-Real-IP": "1.2.3.4"}, want: "203.0.113.9:5000"},
		{name: "trusted real ip", trusted: []string{"10.0.0.0/8"}, remote: "10.1.2.3:5000", headers: map[string]string{"X-Real-IP": "1.2.3.4"}, want: "1.2.3.4"},
		{name: "trusted forwarded for", trusted: []string{"10.1.2.3"}, remote: "10.1.2.3:5000", headers: map[string]string{"X-Forwarded-For": "5.6.7.8, 10.1.2.3"}, want: "5.6.7.8"},
		{name: "invalid header kept", trusted: []string{"10.0.0.0/8"}, remote: "10.1.2.3:5000", headers: map[string]string{"X-Real-IP": "not-an-ip"}, want: "10.1.2.3:5000"},
		{name: "no proxies configured", trusted: nil, remote: "10.1.2.3:5000", headers: map[string]string{"X-Real-IP": "1.2.3.4"}, want: "10.1.2.3:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := TrustedRealIP(tt.trusted)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestLogger_CapturesStatus(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
