package domain

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// productFields lists the declared product fields in the order their rules
// are checked, which fixes the order of the resulting error messages.
var productFields = []string{"name", "description", "price", "category", "inStock"}

// Validation checks product payloads against the field rules
type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	return &Validation{validator: validator.New()}
}

// ValidateProduct checks a decoded JSON payload. In partial mode a field
// whose key is absent from the payload is skipped entirely; in full mode
// every field is checked regardless of presence, so an absent field fails
// its type check naturally. Returns one human-readable message per violated
// rule, in field order; an empty result means the payload is valid.
func (v *Validation) ValidateProduct(payload map[string]any, partial bool) []string {
	var errs []string

	for _, field := range productFields {
		value, present := payload[field]
		if partial && !present {
			continue
		}
		if msg := v.checkField(field, value); msg != "" {
			errs = append(errs, msg)
		}
	}

	return errs
}

func (v *Validation) checkField(field string, value any) string {
	switch field {
	case "name", "description":
		s, ok := value.(string)
		if !ok || v.validator.Var(strings.TrimSpace(s), "required") != nil {
			return field + " is required and must be a non-empty string"
		}

	case "price":
		// JSON numbers decode as float64
		n, ok := value.(float64)
		if !ok || math.IsNaN(n) || v.validator.Var(n, "gte=0") != nil {
			return "price is required and must be a number greater than or equal to 0"
		}

	case "category":
		s, ok := value.(string)
		if !ok || v.validator.Var(s, "required") != nil {
			return "category is required and must be a non-empty string"
		}

	case "inStock":
		if _, ok := value.(bool); !ok {
			return "inStock is required and must be a boolean"
		}
	}

	return ""
}
