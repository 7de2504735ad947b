// internal/handlers/report.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fgomes/stockroom-backend/internal/models"
	"github.com/fgomes/stockroom-backend/internal/services"
	"github.com/fgomes/stockroom-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// subjectID resolves whose ledger a grouped report covers: admins may
// ask about any user via ?user_id, everyone else gets their own.
func subjectID(c *gin.Context) (uint, bool) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return 0, false
	}

	role, _ := utils.GetUserRoleFromContext(c)
	if role == string(models.RoleAdmin) {
		if idStr := c.Query("user_id"); idStr != "" {
			id, err := strconv.ParseUint(idStr, 10, 32)
			if err != nil {
				utils.BadRequestResponse(c, "Invalid user_id", nil)
				return 0, false
			}
			return uint(id), true
		}
	}

	return userID, true
}

// GET /reports/purchases-by-product
func (h *ReportHandler) PurchasesByProduct(c *gin.Context) {
	supplierID, ok := subjectID(c)
	if !ok {
		return
	}

	rows, err := h.reportService.PurchasesByProduct(supplierID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, rows)
}

// GET /reports/sales-by-product
func (h *ReportHandler) SalesByProduct(c *gin.Context) {
	buyerID, ok := subjectID(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesByProduct(buyerID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, rows)
}

// GET /reports/financial-summary (admin only)
func (h *ReportHandler) FinancialSummary(c *gin.Context) {
	summary, err := h.reportService.GetFinancialSummary()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, summary)
}
