package greeting

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dalemusser/hellocountry/internal/app/store/greetings"
	"github.com/dalemusser/hellocountry/internal/app/system/countrycode"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the greeting.
type Handler struct {
	Greetings *greetings.Table
	Resolver  *countrycode.Resolver
	Log       *zap.Logger
}

// NewHandler constructs a greeting Handler from the loaded table and the
// country code resolver.
func NewHandler(table *greetings.Table, resolver *countrycode.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		Greetings: table,
		Resolver:  resolver,
		Log:       logger,
	}
}

type greetingResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Serve handles GET /.
//
// The country code comes from server configuration, not from the request.
//
// On a known code: 200 and
//
//	{ "code":"FR", "message":"Bonjour!" }
//
// On an unknown code: 404 and
//
//	{ "error":"Unknown country code 'ZZ'" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	code := h.Resolver.Resolve()

	w.Header().Set("Content-Type", "application/json")

	msg, ok := h.Greetings.Lookup(code)
	if !ok {
		// A configuration mismatch, not a fault.
		h.Log.Debug("unknown country code", zap.String("code", code))
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error: fmt.Sprintf("Unknown country code '%s'", code),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(greetingResponse{
		Code:    code,
		Message: msg,
	})
}
