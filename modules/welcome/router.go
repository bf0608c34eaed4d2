package welcome

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handle returns the module router. The diagnostic page is mounted only
// when enabled in configuration; in production the route does not exist.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleWelcome)
	if s.cfg.Diagnostic {
		r.Get("/diagnostic", s.handleDiagnostic)
	}
	return r
}
