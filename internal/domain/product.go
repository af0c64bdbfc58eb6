package domain

// Product represents the product model
//
// swagger:model
type Product struct {
	// The ID of the product, assigned by the server on creation
	//
	// required: true
	// example: 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
	ID string `json:"id"`

	// The name of the product
	//
	// required: true
	// example: Coffee Grinder
	Name string `json:"name"`

	// The description of the product
	//
	// required: true
	// example: Conical burr grinder with 40 settings
	Description string `json:"description"`

	// The price of the product
	//
	// required: true
	// min: 0
	// example: 59.90
	Price float64 `json:"price"`

	// The category of the product
	//
	// required: true
	// example: kitchen
	Category string `json:"category"`

	// Whether the product is currently in stock
	//
	// required: true
	InStock bool `json:"inStock"`
}

// Products is a collection of Product
type Products []*Product

// ProductPatch carries the subset of product fields present in a partial
// update. A nil field means the payload did not mention it.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// ProductFromPayload builds a Product from exactly the five declared fields
// of a decoded JSON object; extraneous keys are ignored. The payload must
// already have passed full validation, so the type assertions cannot fail.
func ProductFromPayload(id string, payload map[string]any) *Product {
	name, _ := payload["name"].(string)
	description, _ := payload["description"].(string)
	price, _ := payload["price"].(float64)
	category, _ := payload["category"].(string)
	inStock, _ := payload["inStock"].(bool)

	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		InStock:     inStock,
	}
}

// PatchFromPayload builds a ProductPatch from the fields present in a
// decoded JSON object. Keys absent from the payload stay nil so a merge
// leaves the corresponding record fields untouched.
func PatchFromPayload(payload map[string]any) ProductPatch {
	var patch ProductPatch

	if v, ok := payload["name"].(string); ok {
		patch.Name = &v
	}
	if v, ok := payload["description"].(string); ok {
		patch.Description = &v
	}
	if v, ok := payload["price"].(float64); ok {
		patch.Price = &v
	}
	if v, ok := payload["category"].(string); ok {
		patch.Category = &v
	}
	if v, ok := payload["inStock"].(bool); ok {
		patch.InStock = &v
	}

	return patch
}
