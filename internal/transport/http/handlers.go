package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-service/internal/domain"
	"github.com/kahvecikaan/product-service/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
	validation     *domain.Validation
	logger         hclog.Logger
}

func NewProductHandler(ps service.ProductService, v *domain.Validation, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		validation:     v,
		logger:         log,
	}
}

// handle adapts an error-returning handler to http.HandlerFunc, routing any
// returned error to the terminal error handler.
func (h *ProductHandler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, h.logger, err)
		}
	}
}

// respond writes a JSON success response. Serialization failures at this
// point can only be logged, the status line is already on the wire.
func (h *ProductHandler) respond(w http.ResponseWriter, status int, v any) error {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error serializing response", "error", err)
	}
	return nil
}

// ListProducts handles GET /api/products
//
// swagger:route GET /api/products products listProducts
//
// Returns a filtered, paginated list of products.
//
// Responses:
//
//	200: productPageResponse
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	page, err := h.productService.ListProducts(r.Context(), service.ListOptions{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     atoiDefault(q.Get("page"), 1),
		Limit:    atoiDefault(q.Get("limit"), 10),
	})
	if err != nil {
		return err
	}

	return h.respond(w, http.StatusOK, page)
}

// SearchProducts handles GET /api/products/search
//
// swagger:route GET /api/products/search products searchProducts
//
// Returns products whose name contains the query, case-insensitive.
//
// Responses:
//
//	200: searchResultResponse
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) error {
	result, err := h.productService.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return err
	}

	return h.respond(w, http.StatusOK, result)
}

// GetStats handles GET /api/products/stats
//
// swagger:route GET /api/products/stats products getStats
//
// Returns the total product count and a per-category breakdown.
//
// Responses:
//
//	200: statsResponse
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.productService.GetStats(r.Context())
	if err != nil {
		return err
	}

	return h.respond(w, http.StatusOK, stats)
}

// GetProduct handles GET /api/products/{id}
//
// swagger:route GET /api/products/{id} products getProduct
//
// Returns a single product.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		return mapNotFound(err)
	}

	return h.respond(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/products
//
// swagger:route POST /api/products products createProduct
//
// Creates a product from the five declared fields.
//
// Security:
//   - api_key:
//
// Responses:
//
//	201: productResponse
//	400: errorResponse
//	401: errorResponse
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	payload, err := payloadFromContext(r.Context())
	if err != nil {
		return err
	}

	if errs := h.validation.ValidateProduct(payload, false); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}

	created, err := h.productService.CreateProduct(r.Context(), domain.ProductFromPayload("", payload))
	if err != nil {
		return err
	}

	return h.respond(w, http.StatusCreated, created)
}

// ReplaceProduct handles PUT /api/products/{id}
//
// swagger:route PUT /api/products/{id} products replaceProduct
//
// Replaces a product wholesale; fields missing from the payload are not
// carried over from the old record.
//
// Security:
//   - api_key:
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	401: errorResponse
//	404: errorResponse
func (h *ProductHandler) ReplaceProduct(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	payload, err := payloadFromContext(r.Context())
	if err != nil {
		return err
	}

	if errs := h.validation.ValidateProduct(payload, false); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}

	replaced, err := h.productService.ReplaceProduct(r.Context(), id, domain.ProductFromPayload(id, payload))
	if err != nil {
		return mapNotFound(err)
	}

	return h.respond(w, http.StatusOK, replaced)
}

// PatchProduct handles PATCH /api/products/{id}
//
// swagger:route PATCH /api/products/{id} products patchProduct
//
// Merges the fields present in the payload into an existing product.
//
// Security:
//   - api_key:
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	401: errorResponse
//	404: errorResponse
func (h *ProductHandler) PatchProduct(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	payload, err := payloadFromContext(r.Context())
	if err != nil {
		return err
	}

	if errs := h.validation.ValidateProduct(payload, true); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}

	merged, err := h.productService.PatchProduct(r.Context(), id, domain.PatchFromPayload(payload))
	if err != nil {
		return mapNotFound(err)
	}

	return h.respond(w, http.StatusOK, merged)
}

// DeleteProduct handles DELETE /api/products/{id}
//
// swagger:route DELETE /api/products/{id} products deleteProduct
//
// Deletes a product.
//
// Security:
//   - api_key:
//
// Responses:
//
//	204: noContentResponse
//	401: errorResponse
//	404: errorResponse
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		return mapNotFound(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Greet handles GET / with a plain welcome message.
func (h *ProductHandler) Greet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Welcome to the Product Service API"))
}

// mapNotFound converts the repository's sentinel into the API's 404 error
// and passes everything else through untouched.
func mapNotFound(err error) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.NewNotFoundError("Product not found")
	}
	return err
}

// atoiDefault parses a query parameter, falling back to def when the value
// is empty or not an integer.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
