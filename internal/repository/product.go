package repository

import (
	"context"
	"sync"

	"github.com/kahvecikaan/product-service/internal/domain"
)

// ProductRepository abstracts storage of product records.
type ProductRepository interface {
	GetAll(ctx context.Context) (domain.Products, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Add(ctx context.Context, product *domain.Product) error
	Replace(ctx context.Context, product *domain.Product) error
	Merge(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type memoryProductRepository struct {
	products domain.Products
	mutex    sync.RWMutex
}

// NewMemoryProductRepository returns an empty in-memory repository. Records
// keep insertion order. IDs are assigned by the caller before Add; the
// repository does not check their uniqueness.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{}
}

// GetAll returns a snapshot of the collection. Callers may mutate the
// returned records freely without corrupting the store.
func (r *memoryProductRepository) GetAll(ctx context.Context) (domain.Products, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make(domain.Products, len(r.products))
	for i, p := range r.products {
		cp := *p
		products[i] = &cp
	}

	return products, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}

	cp := *r.products[i]
	return &cp, nil
}

func (r *memoryProductRepository) Add(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

// Replace overwrites the record with the matching ID in place, preserving
// its position in the collection.
func (r *memoryProductRepository) Replace(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return domain.ErrProductNotFound
	}

	cp := *product
	r.products[i] = &cp
	return nil
}

// Merge overwrites only the fields present in the patch, holding the write
// lock for the whole merge so readers never observe a half-applied update.
func (r *memoryProductRepository) Merge(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}

	p := r.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}

	cp := *p
	return &cp, nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}

	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// indexOf must be called with the mutex held.
func (r *memoryProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
