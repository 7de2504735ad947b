// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fgomes/stockroom-backend/internal/apperrors"
	"github.com/fgomes/stockroom-backend/internal/utils"
	"gorm.io/gorm"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	catalog *CatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.catalog = NewCatalogService(s.db)
}

func (s *CatalogServiceTestSuite) TestCreateProductInitializesZeroState() {
	product, err := s.catalog.CreateProduct(&CreateProductRequest{
		Description:  "AA batteries",
		Location:     "shelf B3",
		ReorderLevel: 40,
		Tags:         []string{"electronics"},
	})
	s.Require().NoError(err)

	s.Equal(0, product.Quantity)
	s.Equal(0.0, product.PurchasePrice)
	s.Equal(0.0, product.TaxRate)
	s.Equal(0.0, product.SalePrice)
	s.Equal(40, product.ReorderLevel)
	s.NotZero(product.ID)
}

func (s *CatalogServiceTestSuite) TestCreateProductRejectsBlankFields() {
	var validationErr *apperrors.ValidationError

	_, err := s.catalog.CreateProduct(&CreateProductRequest{Description: "", Location: "shelf"})
	s.Require().Error(err)
	s.ErrorAs(err, &validationErr)

	_, err = s.catalog.CreateProduct(&CreateProductRequest{Description: "   ", Location: "shelf"})
	s.Require().Error(err)
	s.ErrorAs(err, &validationErr)
	s.Equal("description", validationErr.Field)

	_, err = s.catalog.CreateProduct(&CreateProductRequest{Description: "soap", Location: "  "})
	s.Require().Error(err)
	s.ErrorAs(err, &validationErr)
	s.Equal("location", validationErr.Field)
}

func (s *CatalogServiceTestSuite) TestCreateProductRejectsNegativeReorderLevel() {
	_, err := s.catalog.CreateProduct(&CreateProductRequest{
		Description:  "soap",
		Location:     "shelf",
		ReorderLevel: -1,
	})
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
}

func (s *CatalogServiceTestSuite) TestGetProductNotFound() {
	_, err := s.catalog.GetProduct(42)

	var notFoundErr *apperrors.NotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.Equal("product", notFoundErr.Resource)
	s.Equal(uint(42), notFoundErr.ID)
}

func (s *CatalogServiceTestSuite) TestListProductsOrderedByID() {
	createProduct(s.T(), s.db, "gamma", 0)
	createProduct(s.T(), s.db, "alpha", 0)
	createProduct(s.T(), s.db, "beta", 0)

	products, total, err := s.catalog.ListProducts(utils.PaginationParams{Page: 1, Limit: 20})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(products, 3)
	s.Less(products[0].ID, products[1].ID)
	s.Less(products[1].ID, products[2].ID)
}

func (s *CatalogServiceTestSuite) TestListProductsIdempotent() {
	createProduct(s.T(), s.db, "alpha", 10)
	createProduct(s.T(), s.db, "beta", 20)

	first, _, err := s.catalog.ListProducts(utils.PaginationParams{Page: 1, Limit: 20})
	s.Require().NoError(err)
	second, _, err := s.catalog.ListProducts(utils.PaginationParams{Page: 1, Limit: 20})
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *CatalogServiceTestSuite) TestListLowStock() {
	low := createProduct(s.T(), s.db, "nearly out", 100)
	s.Require().NoError(s.db.Model(low).UpdateColumn("quantity", 9).Error)

	boundary := createProduct(s.T(), s.db, "at threshold", 100)
	s.Require().NoError(s.db.Model(boundary).UpdateColumn("quantity", 10).Error)

	healthy := createProduct(s.T(), s.db, "plenty", 100)
	s.Require().NoError(s.db.Model(healthy).UpdateColumn("quantity", 80).Error)

	products, err := s.catalog.ListLowStock()
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("nearly out", products[0].Description)
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
