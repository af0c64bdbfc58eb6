package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-service/internal/domain"
	"github.com/kahvecikaan/product-service/internal/events"
	"github.com/kahvecikaan/product-service/internal/repository"
)

// UncategorizedLabel groups records with an empty category in the stats.
const UncategorizedLabel = "uncategorized"

// ListOptions narrows and pages the product listing.
type ListOptions struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ProductPage is one page of the filtered product listing. Total counts all
// records matching the filters, before pagination.
type ProductPage struct {
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
	Data  domain.Products `json:"data"`
}

// SearchResult holds the products whose name matched a search query.
type SearchResult struct {
	Total int             `json:"total"`
	Data  domain.Products `json:"data"`
}

// Stats summarizes the catalog by category.
type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

type ProductService interface {
	ListProducts(ctx context.Context, opts ListOptions) (*ProductPage, error)
	SearchProducts(ctx context.Context, query string) (*SearchResult, error)
	GetStats(ctx context.Context) (*Stats, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReplaceProduct(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	PatchProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	repo     repository.ProductRepository
	eventBus *events.EventBus[any]
	logger   hclog.Logger
}

func NewProductService(
	repo repository.ProductRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) ProductService {
	return &productService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *productService) ListProducts(ctx context.Context, opts ListOptions) (*ProductPage, error) {
	s.logger.Debug("Listing products",
		"category", opts.Category,
		"search", opts.Search,
		"page", opts.Page,
		"limit", opts.Limit)

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	filtered := make(domain.Products, 0, len(products))
	for _, p := range products {
		if opts.Category != "" && !strings.EqualFold(p.Category, opts.Category) {
			continue
		}
		if opts.Search != "" && !containsFold(p.Name, opts.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 1
	}

	total := len(filtered)
	// The multiplication and addition can overflow for huge page or limit
	// values, so clamp negatives as well as past-the-end offsets.
	start := (page - 1) * limit
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end < start || end > total {
		end = total
	}

	return &ProductPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  filtered[start:end],
	}, nil
}

// SearchProducts matches the query against product names, case-insensitive.
// An empty query yields an empty result rather than an error.
func (s *productService) SearchProducts(ctx context.Context, query string) (*SearchResult, error) {
	s.logger.Debug("Searching products", "query", query)

	if query == "" {
		return &SearchResult{Total: 0, Data: domain.Products{}}, nil
	}

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	matches := make(domain.Products, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, query) {
			matches = append(matches, p)
		}
	}

	return &SearchResult{Total: len(matches), Data: matches}, nil
}

func (s *productService) GetStats(ctx context.Context) (*Stats, error) {
	s.logger.Debug("Computing product stats")

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	byCategory := map[string]int{}
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = UncategorizedLabel
		}
		byCategory[category]++
	}

	return &Stats{Total: len(products), ByCategory: byCategory}, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct assigns a fresh unique ID and appends the product. The
// repository does not check ID uniqueness; the UUID generated here is the
// uniqueness guarantee.
func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	s.logger.Debug("Adding new product", "name", product.Name)

	product.ID = uuid.NewString()
	if err := s.repo.Add(ctx, product); err != nil {
		s.logger.Error("Unable to add product", "name", product.Name, "error", err)
		return nil, err
	}

	s.eventBus.Publish(events.ProductCreated{ProductID: product.ID})
	return product, nil
}

// ReplaceProduct overwrites the record wholesale: the stored record becomes
// exactly the given fields plus the original ID, regardless of what the old
// record held.
func (s *productService) ReplaceProduct(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	s.logger.Debug("Replacing product", "id", id)

	product.ID = id
	if err := s.repo.Replace(ctx, product); err != nil {
		return nil, err
	}

	s.eventBus.Publish(events.ProductUpdated{ProductID: id})
	return product, nil
}

func (s *productService) PatchProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	s.logger.Debug("Patching product", "id", id)

	merged, err := s.repo.Merge(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(events.ProductUpdated{ProductID: id})
	return merged, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	s.logger.Debug("Deleting product", "id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.eventBus.Publish(events.ProductDeleted{ProductID: id})
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
