// Package classification of Product Service API
//
// # Documentation for Product Service API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// SecurityDefinitions:
// api_key:
//
//	type: apiKey
//	name: X-API-Key
//	in: header
//
// swagger:meta
package http

import (
	"github.com/kahvecikaan/product-service/internal/domain"
	"github.com/kahvecikaan/product-service/internal/service"
)

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error with a message and optional validation details
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// One page of the filtered product listing
// swagger:response productPageResponse
type productPageResponseWrapper struct {
	// The requested page plus the pre-pagination match count
	// in: body
	Body service.ProductPage
}

// Products whose name matched the search query
// swagger:response searchResultResponse
type searchResultResponseWrapper struct {
	// All matches, unpaginated
	// in: body
	Body service.SearchResult
}

// Catalog totals broken down by category
// swagger:response statsResponse
type statsResponseWrapper struct {
	// in: body
	Body service.Stats
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body domain.Product
}

// No content response for endpoints that return 204
// swagger:response noContentResponse
type noContentResponseWrapper struct{}

// swagger:parameters getProduct replaceProduct patchProduct deleteProduct
type productIDParamsWrapper struct {
	// The ID of the product
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters createProduct replaceProduct
type productBodyParamsWrapper struct {
	// Product data structure to create or replace
	// in: body
	// required: true
	Body domain.Product
}

// swagger:parameters listProducts
type listProductsParamsWrapper struct {
	// Case-insensitive category filter
	// in: query
	Category string `json:"category"`

	// Case-insensitive substring match on the product name
	// in: query
	Search string `json:"search"`

	// Page number, defaults to 1
	// in: query
	Page int `json:"page"`

	// Page size, defaults to 10
	// in: query
	Limit int `json:"limit"`
}

// swagger:parameters searchProducts
type searchProductsParamsWrapper struct {
	// Case-insensitive substring match on the product name
	// in: query
	Q string `json:"q"`
}
