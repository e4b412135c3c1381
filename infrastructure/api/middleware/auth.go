package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIKeyHeader is the request header carrying the API key.
const APIKeyHeader = "X-API-KEY"

// AuthConfig holds the accepted API keys. With no keys, auth is disabled.
type AuthConfig struct {
	keys []string
}

// NewAuthConfigWithKeys creates an AuthConfig. Blank keys are ignored.
func NewAuthConfigWithKeys(keys []string) AuthConfig {
	accepted := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			accepted = append(accepted, k)
		}
	}
	return AuthConfig{keys: accepted}
}

// Enabled reports whether any key is configured.
func (c AuthConfig) Enabled() bool { return len(c.keys) > 0 }

// Valid reports whether key is one of the accepted keys.
func (c AuthConfig) Valid(key string) bool {
	if key == "" {
		return false
	}
	for _, k := range c.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

// WriteProtect requires a valid API key on mutating requests. GET, HEAD and
// OPTIONS pass through. The key is read from X-API-KEY or a bearer token.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() || readOnly(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if !config.Valid(requestKey(r)) {
				WriteError(w, r, NewAPIError(http.StatusUnauthorized, "missing or invalid API key", ErrAuthentication), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func readOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func requestKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
