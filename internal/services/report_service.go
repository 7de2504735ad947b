// internal/services/report_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fgomes/stockroom-backend/internal/models"
)

// ReportService derives summaries from the two ledgers and the catalog.
// Read-only: it never writes.
type ReportService struct {
	db *gorm.DB
}

type ProductQuantity struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
}

type FinancialSummary struct {
	PurchaseTotal float64 `json:"purchase_total"`
	SaleTotal     float64 `json:"sale_total"`
}

type AvailableProduct struct {
	Description string    `json:"description"`
	SalePrice   float64   `json:"sale_price"`
	Quantity    int       `json:"quantity"`
	AsOf        time.Time `json:"as_of"`
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// PurchasesByProduct sums purchased quantity per product description
// for one supplier, largest first.
func (s *ReportService) PurchasesByProduct(supplierID uint) ([]ProductQuantity, error) {
	var rows []ProductQuantity
	err := s.db.Model(&models.Purchase{}).
		Select("products.description AS description, SUM(purchases.quantity) AS quantity").
		Joins("JOIN products ON products.id = purchases.product_id").
		Where("purchases.supplier_id = ?", supplierID).
		Group("products.description").
		Order("SUM(purchases.quantity) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}
	return rows, nil
}

// SalesByProduct sums sold quantity per product description for one
// buyer, largest first.
func (s *ReportService) SalesByProduct(buyerID uint) ([]ProductQuantity, error) {
	var rows []ProductQuantity
	err := s.db.Model(&models.Sale{}).
		Select("products.description AS description, SUM(sales.quantity) AS quantity").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("sales.buyer_id = ?", buyerID).
		Group("products.description").
		Order("SUM(sales.quantity) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return rows, nil
}

// GetFinancialSummary totals both ledgers. Empty ledgers yield zeros.
func (s *ReportService) GetFinancialSummary() (*FinancialSummary, error) {
	var summary FinancialSummary

	err := s.db.Model(&models.Purchase{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.PurchaseTotal).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum purchases: %w", err)
	}

	err = s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.SaleTotal).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}

	return &summary, nil
}

// AvailableProducts lists in-stock products with a sale price derived
// from the latest purchase: twice its unit price, or zero when the
// product has never been purchased. Latest means highest purchase id,
// not wall clock.
func (s *ReportService) AvailableProducts() ([]AvailableProduct, error) {
	var products []models.Product
	if err := s.db.Where("quantity > 0").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	asOf := time.Now()
	available := make([]AvailableProduct, 0, len(products))

	for _, product := range products {
		var lastPurchase models.Purchase
		err := s.db.Where("product_id = ?", product.ID).
			Order("id DESC").
			First(&lastPurchase).Error

		salePrice := 0.0
		if err == nil {
			salePrice = lastPurchase.UnitPrice * saleMarkup
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch latest purchase: %w", err)
		}

		available = append(available, AvailableProduct{
			Description: product.Description,
			SalePrice:   salePrice,
			Quantity:    product.Quantity,
			AsOf:        asOf,
		})
	}

	return available, nil
}
