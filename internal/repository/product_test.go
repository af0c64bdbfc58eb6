package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/product-service/internal/domain"
)

func seededRepo(t *testing.T) ProductRepository {
	t.Helper()

	repo := NewMemoryProductRepository()
	products := []*domain.Product{
		{ID: "p1", Name: "Latte", Description: "Frothy milky coffee", Price: 2.45, Category: "coffee", InStock: true},
		{ID: "p2", Name: "Espresso", Description: "Short and strong", Price: 1.99, Category: "coffee", InStock: true},
		{ID: "p3", Name: "Mug", Description: "Ceramic mug", Price: 7.50, Category: "equipment", InStock: false},
	}
	for _, p := range products {
		require.NoError(t, repo.Add(context.Background(), p))
	}

	return repo
}

func TestGetAllKeepsInsertionOrder(t *testing.T) {
	repo := seededRepo(t)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
	assert.Equal(t, "p3", products[2].ID)
}

func TestGetAllReturnsSnapshot(t *testing.T) {
	repo := seededRepo(t)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	// Mutating the snapshot must not leak into the store
	products[0].Name = "Hacked"
	products[1] = nil

	fresh, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Latte", fresh[0].Name)
	assert.Equal(t, "Espresso", fresh[1].Name)
}

func TestGetByID(t *testing.T) {
	repo := seededRepo(t)

	product, err := repo.GetByID(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Espresso", product.Name)

	// Returned record is a copy
	product.Price = 99.0
	again, err := repo.GetByID(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, 1.99, again.Price)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := seededRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReplacePreservesPosition(t *testing.T) {
	repo := seededRepo(t)

	err := repo.Replace(context.Background(), &domain.Product{
		ID: "p2", Name: "Doppio", Description: "Double espresso", Price: 2.80, Category: "coffee", InStock: true,
	})
	require.NoError(t, err)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Doppio", products[1].Name)
}

func TestReplaceNotFound(t *testing.T) {
	repo := seededRepo(t)

	err := repo.Replace(context.Background(), &domain.Product{ID: "missing", Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestMergeOverwritesOnlyPresentFields(t *testing.T) {
	repo := seededRepo(t)

	price := 3.10
	inStock := false
	merged, err := repo.Merge(context.Background(), "p1", domain.ProductPatch{
		Price:   &price,
		InStock: &inStock,
	})
	require.NoError(t, err)

	assert.Equal(t, 3.10, merged.Price)
	assert.False(t, merged.InStock)
	assert.Equal(t, "Latte", merged.Name)
	assert.Equal(t, "Frothy milky coffee", merged.Description)
	assert.Equal(t, "coffee", merged.Category)

	stored, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 3.10, stored.Price)
}

func TestMergeNotFound(t *testing.T) {
	repo := seededRepo(t)

	_, err := repo.Merge(context.Background(), "missing", domain.ProductPatch{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteShiftsRemainingRecords(t *testing.T) {
	repo := seededRepo(t)

	require.NoError(t, repo.Delete(context.Background(), "p2"))

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p3", products[1].ID)

	_, err = repo.GetByID(context.Background(), "p2")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	repo := seededRepo(t)

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
