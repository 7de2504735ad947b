// internal/services/sale_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/fgomes/stockroom-backend/internal/apperrors"
	"github.com/fgomes/stockroom-backend/internal/models"
)

type SaleServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	purchases *PurchaseService
	sales     *SaleService
	supplier  *models.User
	staff     *models.User
	product   *models.Product
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.purchases = NewPurchaseService(s.db)
	s.sales = NewSaleService(s.db)
	s.supplier = createUser(s.T(), s.db, "acme_supplies", models.RoleSupplier)
	s.staff = createUser(s.T(), s.db, "till_clerk", models.RoleStaff)
	s.product = createProduct(s.T(), s.db, "olive oil 1L", 30)

	// Stock the product: 5 units at 10 excl. tax.
	_, err := s.purchases.RecordPurchase(&RecordPurchaseRequest{
		ProductID: s.product.ID, SupplierID: s.supplier.ID,
		UnitPrice: 10, TaxRate: 1.2, Quantity: 5,
	})
	s.Require().NoError(err)
}

func (s *SaleServiceTestSuite) reloadProduct() *models.Product {
	var p models.Product
	s.Require().NoError(s.db.First(&p, s.product.ID).Error)
	return &p
}

func (s *SaleServiceTestSuite) saleCount() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Sale{}).Count(&n).Error)
	return n
}

func (s *SaleServiceTestSuite) TestRecordSaleCapturesPriceAndDecrementsStock() {
	sale, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID,
		Quantity:  3,
	})
	s.Require().NoError(err)

	// unit price = purchase price * 2, total = price * quantity
	s.InDelta(20.0, sale.UnitPrice, 1e-9)
	s.InDelta(60.0, sale.Total, 1e-9)
	s.Equal(s.staff.ID, sale.BuyerID)

	// Returned row carries its relations.
	s.Equal("olive oil 1L", sale.Product.Description)
	s.Equal("till_clerk", sale.Buyer.Username)

	s.Equal(2, s.reloadProduct().Quantity)
}

func (s *SaleServiceTestSuite) TestSalePriceFollowsLatestPurchase() {
	_, err := s.purchases.RecordPurchase(&RecordPurchaseRequest{
		ProductID: s.product.ID, SupplierID: s.supplier.ID,
		UnitPrice: 7, TaxRate: 1.2, Quantity: 1,
	})
	s.Require().NoError(err)

	sale, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID,
		Quantity:  1,
	})
	s.Require().NoError(err)
	s.InDelta(14.0, sale.UnitPrice, 1e-9)
}

func (s *SaleServiceTestSuite) TestInsufficientStockLeavesStateUnchanged() {
	_, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID,
		Quantity:  10,
	})

	var stockErr *apperrors.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal(10, stockErr.Requested)
	s.Equal(5, stockErr.Available)

	s.Equal(int64(0), s.saleCount())
	s.Equal(5, s.reloadProduct().Quantity)
}

func (s *SaleServiceTestSuite) TestSellingExactStockIsAllowed() {
	_, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID,
		Quantity:  5,
	})
	s.Require().NoError(err)
	s.Equal(0, s.reloadProduct().Quantity)
}

func (s *SaleServiceTestSuite) TestQuantityNeverGoesNegative() {
	// Sell in pieces until exhausted, then fail and stay at zero.
	for _, qty := range []int{2, 2, 1} {
		_, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
			ProductID: s.product.ID, Quantity: qty,
		})
		s.Require().NoError(err)
		s.GreaterOrEqual(s.reloadProduct().Quantity, 0)
	}

	_, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID, Quantity: 1,
	})
	var stockErr *apperrors.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal(0, s.reloadProduct().Quantity)
}

func (s *SaleServiceTestSuite) TestUnknownProduct() {
	_, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: 999, Quantity: 1,
	})

	var notFoundErr *apperrors.NotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.Equal("product", notFoundErr.Resource)
}

func (s *SaleServiceTestSuite) TestUnknownBuyer() {
	_, err := s.sales.RecordSale(999, &RecordSaleRequest{
		ProductID: s.product.ID, Quantity: 1,
	})

	var notFoundErr *apperrors.NotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.Equal("buyer", notFoundErr.Resource)
}

func (s *SaleServiceTestSuite) TestBuyerRoleEnforced() {
	_, err := s.sales.RecordSale(s.supplier.ID, &RecordSaleRequest{
		ProductID: s.product.ID, Quantity: 1,
	})

	var validationErr *apperrors.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("buyer_id", validationErr.Field)
	s.Equal(int64(0), s.saleCount())
}

func (s *SaleServiceTestSuite) TestRejectsNonPositiveQuantity() {
	var validationErr *apperrors.ValidationError

	_, err := s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID, Quantity: 0,
	})
	s.ErrorAs(err, &validationErr)

	_, err = s.sales.RecordSale(s.staff.ID, &RecordSaleRequest{
		ProductID: s.product.ID, Quantity: -2,
	})
	s.ErrorAs(err, &validationErr)
}

func TestSaleServiceSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
