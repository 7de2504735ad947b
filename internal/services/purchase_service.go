// internal/services/purchase_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fgomes/stockroom-backend/internal/apperrors"
	"github.com/fgomes/stockroom-backend/internal/models"
	"github.com/fgomes/stockroom-backend/internal/utils"
)

// Catalog sale price is recomputed from the purchase unit price on
// every purchase.
const catalogMarkup = 1.30

// PurchaseService appends incoming stock transactions and applies their
// effects to the catalog.
type PurchaseService struct {
	db *gorm.DB
}

type RecordPurchaseRequest struct {
	ProductID  uint    `json:"product_id" validate:"required"`
	SupplierID uint    `json:"supplier_id" validate:"required"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	TaxRate    float64 `json:"tax_rate" validate:"gte=0"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// RecordPurchase appends an immutable purchase row and, in the same
// transaction, raises the product's stock and resets its pricing from
// the purchase. Either everything commits or nothing does.
func (s *PurchaseService) RecordPurchase(req *RecordPurchaseRequest) (*models.Purchase, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var purchase *models.Purchase

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier models.User
		if err := tx.First(&supplier, req.SupplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "supplier", ID: req.SupplierID}
			}
			return fmt.Errorf("database error: %w", err)
		}

		if supplier.Role != models.RoleSupplier {
			return &apperrors.ValidationError{
				Field:  "supplier_id",
				Reason: "account does not have the supplier role",
			}
		}

		// Row lock; dialects without row locking drop the clause.
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "product", ID: req.ProductID}
			}
			return fmt.Errorf("database error: %w", err)
		}

		purchase = &models.Purchase{
			ProductID:  product.ID,
			SupplierID: supplier.ID,
			Quantity:   req.Quantity,
			UnitPrice:  req.UnitPrice,
			TaxRate:    req.TaxRate,
			Total:      req.UnitPrice * req.TaxRate * float64(req.Quantity),
		}

		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		updates := map[string]interface{}{
			"quantity":       gorm.Expr("quantity + ?", req.Quantity),
			"tax_rate":       req.TaxRate,
			"purchase_price": req.UnitPrice,
			"sale_price":     req.UnitPrice * catalogMarkup,
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Load relationships
	if err := s.db.Preload("Product").Preload("Supplier").First(purchase, purchase.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload purchase: %w", err)
	}

	return purchase, nil
}

// ListPurchases returns the ledger newest first.
func (s *PurchaseService) ListPurchases(params utils.PaginationParams) ([]models.Purchase, int64, error) {
	query := s.db.Model(&models.Purchase{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	query = query.Preload("Product").Preload("Supplier").Order("id DESC")
	query = utils.ApplyPagination(query, params)

	var purchases []models.Purchase
	if err := query.Find(&purchases).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch purchases: %w", err)
	}

	return purchases, total, nil
}
