// internal/services/sale_service.go
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

// Sale unit price is twice the product's purchase price at the moment
// of sale. Independent of the catalog's stored sale price.
const saleMarkup = 2.0

// SaleService appends outgoing stock transactions and keeps stock from
// going negative.
type SaleService struct {
	db *gorm.DB
}

type RecordSaleRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db}
}

// RecordSale appends an immutable sale row for the buyer and decrements
// stock in the same transaction. The decrement is guarded on current
// quantity, so concurrent sales cannot commit a negative stock level;
// a sale that loses the race rolls back with InsufficientStockError.
func (s *SaleService) RecordSale(buyerID uint, req *RecordSaleRequest) (*models.Sale, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var sale *models.Sale

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var buyer models.User
		if err := tx.First(&buyer, buyerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "buyer", ID: buyerID}
			}
			return fmt.Errorf("database error: %w", err)
		}

		if buyer.Role != models.RoleStaff {
			return &apperrors.ValidationError{
				Field:  "buyer_id",
				Reason: "account does not have the staff role",
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

		if product.Quantity < req.Quantity {
			return &apperrors.InsufficientStockError{
				ProductID: product.ID,
				Requested: req.Quantity,
				Available: product.Quantity,
			}
		}

		unitPrice := product.PurchasePrice * saleMarkup
		sale = &models.Sale{
			ProductID: product.ID,
			BuyerID:   buyer.ID,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice,
			Total:     unitPrice * float64(req.Quantity),
		}

		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity >= ?", product.ID, req.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", req.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to update stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Stock changed under us between the read and the update.
			return &apperrors.InsufficientStockError{
				ProductID: product.ID,
				Requested: req.Quantity,
				Available: product.Quantity,
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Load relationships
	if err := s.db.Preload("Product").Preload("Buyer").First(sale, sale.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload sale: %w", err)
	}

	return sale, nil
}

// ListSales returns the ledger newest first.
func (s *SaleService) ListSales(params utils.PaginationParams) ([]models.Sale, int64, error) {
	query := s.db.Model(&models.Sale{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query = query.Preload("Product").Preload("Buyer").Order("id DESC")
	query = utils.ApplyPagination(query, params)

	var sales []models.Sale
	if err := query.Find(&sales).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sales: %w", err)
	}

	return sales, total, nil
}
