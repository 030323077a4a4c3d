// internal/app/features/greeting/routes.go
package greeting

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the greeting.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	r.Head("/", h.Serve)
	return r
}
