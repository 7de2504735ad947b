// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fgomes/stockroom-backend/internal/apperrors"
	"github.com/fgomes/stockroom-backend/internal/models"
	"github.com/fgomes/stockroom-backend/internal/utils"
)

// CatalogService owns product identity and the canonical quantity and
// pricing state. Only the purchase and sale services mutate quantity
// and prices.
type CatalogService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Description  string   `json:"description" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	ReorderLevel int      `json:"reorder_level" validate:"gte=0"`
	Tags         []string `json:"tags,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// CreateProduct registers a product with zero stock and zero prices.
// Pricing is established by the first purchase.
func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Description) == "" {
		return nil, &apperrors.ValidationError{Field: "description", Reason: "description must not be blank"}
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, &apperrors.ValidationError{Field: "location", Reason: "location must not be blank"}
	}

	product := &models.Product{
		Description:  strings.TrimSpace(req.Description),
		Location:     strings.TrimSpace(req.Location),
		ReorderLevel: req.ReorderLevel,
		Tags:         req.Tags,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "product", ID: id}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// ListProducts returns the catalog ordered by identifier.
func (s *CatalogService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order("id")
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// ListLowStock returns products whose quantity has fallen below 10% of
// the reorder level, ordered by identifier. The filter goes through
// Product.IsLowStock so the threshold lives in one place.
func (s *CatalogService) ListLowStock() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	lowStock := make([]models.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			lowStock = append(lowStock, p)
		}
	}
	return lowStock, nil
}
