package events

// ProductCreated is published after a product is added to the catalog.
type ProductCreated struct {
	ProductID string `json:"product_id"`
}

// ProductUpdated is published after a full replace or a partial update.
type ProductUpdated struct {
	ProductID string `json:"product_id"`
}

// ProductDeleted is published after a product is removed from the catalog.
type ProductDeleted struct {
	ProductID string `json:"product_id"`
}
