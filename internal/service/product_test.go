package service

import (
	"context"
	"math"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/product-service/internal/domain"
	"github.com/kahvecikaan/product-service/internal/events"
	"github.com/kahvecikaan/product-service/internal/repository"
)

func newTestService(t *testing.T) (ProductService, repository.ProductRepository, *events.EventBus[any]) {
	t.Helper()

	repo := repository.NewMemoryProductRepository()
	seed := []*domain.Product{
		{ID: "p1", Name: "Laptop", Description: "14 inch ultrabook", Price: 999.0, Category: "electronics", InStock: true},
		{ID: "p2", Name: "Phone", Description: "Budget smartphone", Price: 299.0, Category: "Electronics", InStock: true},
		{ID: "p3", Name: "Desk", Description: "Standing desk", Price: 450.0, Category: "furniture", InStock: true},
		{ID: "p4", Name: "Chair", Description: "Office chair", Price: 120.0, Category: "furniture", InStock: false},
		{ID: "p5", Name: "Lamp", Description: "LED desk lamp", Price: 35.0, Category: "", InStock: true},
	}
	for _, p := range seed {
		require.NoError(t, repo.Add(context.Background(), p))
	}

	bus := events.NewEventBus[any]()
	return NewProductService(repo, bus, hclog.NewNullLogger()), repo, bus
}

func TestListProductsPagination(t *testing.T) {
	svc, _, _ := newTestService(t)

	page, err := svc.ListProducts(context.Background(), ListOptions{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, "p1", page.Data[0].ID)

	page, err = svc.ListProducts(context.Background(), ListOptions{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "p5", page.Data[0].ID)
}

func TestListProductsFloorsPageAndLimit(t *testing.T) {
	svc, _, _ := newTestService(t)

	page, err := svc.ListProducts(context.Background(), ListOptions{Page: -3, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Limit)
	assert.Len(t, page.Data, 1)
}

func TestListProductsExtremeOffsets(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Offsets whose arithmetic overflows int must clamp, not panic
	page, err := svc.ListProducts(context.Background(), ListOptions{Page: math.MaxInt, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Empty(t, page.Data)

	page, err = svc.ListProducts(context.Background(), ListOptions{Page: 1, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Len(t, page.Data, 5)

	page, err = svc.ListProducts(context.Background(), ListOptions{Page: math.MaxInt, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestListProductsPageBeyondEnd(t *testing.T) {
	svc, _, _ := newTestService(t)

	page, err := svc.ListProducts(context.Background(), ListOptions{Page: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Empty(t, page.Data)
}

func TestListProductsCategoryFilterIsCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService(t)

	page, err := svc.ListProducts(context.Background(), ListOptions{Category: "ELECTRONICS", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Data, 2)
}

func TestListProductsSearchFilter(t *testing.T) {
	svc, _, _ := newTestService(t)

	page, err := svc.ListProducts(context.Background(), ListOptions{Search: "LA", Page: 1, Limit: 10})
	require.NoError(t, err)
	// Laptop and Lamp
	assert.Equal(t, 2, page.Total)
}

func TestSearchProductsEmptyQuery(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.SearchProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestSearchProductsMatchesSubstring(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.SearchProducts(context.Background(), "pHo")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Phone", result.Data[0].Name)
}

func TestGetStats(t *testing.T) {
	svc, _, _ := newTestService(t)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.ByCategory["electronics"])
	assert.Equal(t, 1, stats.ByCategory["Electronics"])
	assert.Equal(t, 2, stats.ByCategory["furniture"])
	assert.Equal(t, 1, stats.ByCategory[UncategorizedLabel])

	sum := 0
	for _, n := range stats.ByCategory {
		sum += n
	}
	assert.Equal(t, stats.Total, sum)
}

func TestCreateProductAssignsUniqueID(t *testing.T) {
	svc, repo, _ := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name: "Monitor", Description: "27 inch display", Price: 210.0, Category: "electronics", InStock: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	existing, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	seen := map[string]int{}
	for _, p := range existing {
		seen[p.ID]++
	}
	assert.Equal(t, 1, seen[created.ID])

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monitor", stored.Name)
}

func TestCreateProductPublishesEvent(t *testing.T) {
	svc, _, bus := newTestService(t)
	sub := bus.Subscribe()
	defer bus.Unsubscribe(sub)

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name: "Keyboard", Description: "Mechanical keyboard", Price: 85.0, Category: "electronics", InStock: true,
	})
	require.NoError(t, err)

	event := <-sub
	createdEvent, ok := event.(events.ProductCreated)
	require.True(t, ok)
	assert.Equal(t, created.ID, createdEvent.ProductID)
}

func TestReplaceProductIsWholesale(t *testing.T) {
	svc, repo, _ := newTestService(t)

	replaced, err := svc.ReplaceProduct(context.Background(), "p4", &domain.Product{
		Name: "Stool", Description: "Bar stool", Price: 60.0, Category: "furniture", InStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "p4", replaced.ID)
	assert.Equal(t, "Stool", replaced.Name)

	stored, err := repo.GetByID(context.Background(), "p4")
	require.NoError(t, err)
	assert.Equal(t, "Stool", stored.Name)
	assert.True(t, stored.InStock)
}

func TestReplaceProductNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ReplaceProduct(context.Background(), "missing", &domain.Product{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPatchProductChangesOnlyPatchedFields(t *testing.T) {
	svc, repo, _ := newTestService(t)

	price := 10.0
	merged, err := svc.PatchProduct(context.Background(), "p1", domain.ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 10.0, merged.Price)
	assert.Equal(t, "Laptop", merged.Name)
	assert.Equal(t, "14 inch ultrabook", merged.Description)
	assert.Equal(t, "electronics", merged.Category)
	assert.True(t, merged.InStock)

	stored, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Price)
}

func TestDeleteProduct(t *testing.T) {
	svc, repo, _ := newTestService(t)

	require.NoError(t, svc.DeleteProduct(context.Background(), "p3"))

	_, err := repo.GetByID(context.Background(), "p3")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.DeleteProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
