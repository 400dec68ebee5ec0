package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

// auth is an HTTP middleware that enforces the shared-server-key check.
//
// Every device of the account presents the same key as a bearer token:
//
//	Authorization: Bearer <server key>
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, and with HTTP 403 Forbidden when the presented key
// does not match the configured one. Key comparison is constant-time.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		key, err := getKeyFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(h.serverKey)) != 1 {
			log.Err(ErrWrongServerKey).Send()
			writeError(w, ErrWrongServerKey.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getKeyFromAuthHeader extracts the bearer key string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <key>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] when the header contains fewer than
//     two space-separated parts (i.e. the key is missing entirely).
//   - [ErrEmptyServerKey] when the second part exists but is an empty string.
func getKeyFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	key := parts[1]
	if key == "" {
		return "", ErrEmptyServerKey
	}

	return key, nil
}

// writeError sends the uniform `{ok:false, error}` envelope.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{OK: false, Error: msg}, statusCode)
}
