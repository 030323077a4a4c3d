// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	greetingfeature "github.com/dalemusser/hellocountry/internal/app/features/greeting"
	"github.com/dalemusser/waffle/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler.
//
// Every request gets a request id, an access-log line, and panic recovery
// before reaching the greeting feature mounted at "/".
func BuildHandler(appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(uuidRequestID)
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(logger))
	r.Use(logging.Recoverer(logger))

	greetingHandler := greetingfeature.NewHandler(deps.Greetings, deps.Resolver, logger)
	r.Mount("/", greetingfeature.Routes(greetingHandler))

	return r, nil
}

// uuidRequestID fills in a UUID for requests arriving without an
// X-Request-Id header and echoes the id on the response. middleware.RequestID
// then stores it in the request context.
func uuidRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(middleware.RequestIDHeader, id)
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
