package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-service/internal/domain"
)

// ErrorResponse is the JSON body returned for every failed request
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`

	// One entry per violated validation rule, present only for 400 responses
	Details []string `json:"details,omitempty"`
}

// handlerFunc is a request handler that reports failure by returning an
// error instead of writing the response itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// writeError is the terminal error handler: every error raised anywhere in
// the request pipeline ends up here exactly once. A *domain.APIError maps to
// its own status and body; anything else gets one diagnostic log line and a
// generic 500 so internal details never reach the client.
func writeError(w http.ResponseWriter, logger hclog.Logger, err error) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		logger.Error("Unhandled error", "error", err)
		apiErr = domain.NewAPIError(http.StatusInternalServerError, "Internal server error")
	}

	w.WriteHeader(apiErr.Status)
	body := ErrorResponse{Message: apiErr.Message, Details: apiErr.Details}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Error serializing error response", "error", err)
	}
}
