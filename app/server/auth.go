package server

import (
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"
)

// Auth checks Bearer tokens against a bcrypt hash.
type Auth struct {
	tokenHash  []byte
	publicRead bool
}

// NewAuth makes Auth. Empty hash disables auth.
// publicRead lets GET requests through without a token.
func NewAuth(tokenHash string, publicRead bool) *Auth {
	return &Auth{tokenHash: []byte(tokenHash), publicRead: publicRead}
}

// Enabled returns true if a token hash is configured.
func (a *Auth) Enabled() bool {
	return len(a.tokenHash) > 0
}

// TokenAuth returns middleware that requires a valid Bearer token.
// Returns 401 if the token is missing or doesn't match.
func (a *Auth) TokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.publicRead && r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if err := bcrypt.CompareHashAndPassword(a.tokenHash, []byte(token)); err != nil {
			log.Printf("[INFO] token %q rejected for %s %s", maskToken(token), r.Method, r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NoopAuth returns a pass-through middleware (used when auth is disabled).
func NoopAuth(next http.Handler) http.Handler {
	return next
}

// maskToken returns a masked version of token for safe logging (shows first 4 chars).
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
