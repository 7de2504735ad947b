// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fgomes/stockroom-backend/internal/services"
	"github.com/fgomes/stockroom-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	reportService  *services.ReportService
}

func NewCatalogHandler(catalogService *services.CatalogService, reportService *services.ReportService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		reportService:  reportService,
	}
}

// GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.catalogService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /products (admin only)
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.GetProduct(uint(id))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, product, gin.H{
		"low_stock": product.IsLowStock(),
	})
}

// GET /products/available
func (h *CatalogHandler) AvailableProducts(c *gin.Context) {
	available, err := h.reportService.AvailableProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, available)
}

// GET /products/low-stock (admin only)
func (h *CatalogHandler) LowStockProducts(c *gin.Context) {
	products, err := h.catalogService.ListLowStock()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, products)
}
