package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-service/internal/domain"
)

// APIKeyHeader is the request header carrying the shared secret for
// mutating routes.
const APIKeyHeader = "X-API-Key"

type contextKey string

// ContextKeyPayload holds the decoded JSON request body, set by
// BodyParserMiddleware for mutating routes.
const ContextKeyPayload contextKey = "payload"

// Middleware holds dependencies for the middleware functions
type Middleware struct {
	Logger hclog.Logger
	APIKey string
}

// NewMiddleware creates a new Middleware instance. An empty apiKey means no
// secret is configured; authenticated routes then reject every request.
func NewMiddleware(logger hclog.Logger, apiKey string) *Middleware {
	return &Middleware{
		Logger: logger,
		APIKey: apiKey,
	}
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// BodyParserMiddleware decodes the JSON request body into a generic map and
// adds it to the request context. The map keeps field presence observable,
// which partial validation depends on.
func (m *Middleware) BodyParserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		err := json.NewDecoder(r.Body).Decode(&payload)
		if errors.Is(err, io.EOF) {
			// An empty body counts as an empty object
			payload = map[string]any{}
		} else if err != nil {
			m.Logger.Error("Error decoding request body", "error", err)
			writeError(w, m.Logger, domain.NewAPIError(http.StatusBadRequest, "Invalid JSON body"))
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyPayload, payload)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware gates mutating routes behind the configured API key. When
// no key is configured the check fails closed: every request is rejected.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)
		if m.APIKey == "" || key != m.APIKey {
			writeError(w, m.Logger, domain.NewUnauthorizedError(""))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// payloadFromContext retrieves the body stashed by BodyParserMiddleware.
func payloadFromContext(ctx context.Context) (map[string]any, error) {
	payload, ok := ctx.Value(ContextKeyPayload).(map[string]any)
	if !ok {
		return nil, domain.NewAPIError(http.StatusBadRequest, "Invalid product data")
	}
	return payload, nil
}
