package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header is the canonical request-ID header name.
const Header = "X-Request-ID"

// maxIDLength bounds client-supplied IDs so a hostile caller cannot inflate
// log records.
const maxIDLength = 128

// Middleware attaches a correlation ID to every request: a valid
// client-supplied X-Request-ID is reused, anything else is replaced with a
// fresh UUIDv4. The chosen ID is stored in the request context and echoed
// back in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !validID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// validID accepts non-empty IDs of bounded length built from URL-safe
// characters only.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
