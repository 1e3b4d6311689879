package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"investgrow.backend/internal/interfaces/http/response"
	"investgrow.backend/internal/usecases"
)

// AdminHandler handles the admin console aggregation endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// GetStats returns the dashboard aggregate
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetUsers returns recent users with passwords masked
// GET /api/v1/admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminUsecase.GetUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// GetOrders returns recent investments shaped as orders
// GET /api/v1/admin/orders
func (h *AdminHandler) GetOrders(c *gin.Context) {
	orders, err := h.adminUsecase.GetOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// GetPayments returns recent investments shaped as payments
// GET /api/v1/admin/payments
func (h *AdminHandler) GetPayments(c *gin.Context) {
	payments, err := h.adminUsecase.GetPayments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payments)
}

// GetLogs returns recent audit-log entries
// GET /api/v1/admin/logs
func (h *AdminHandler) GetLogs(c *gin.Context) {
	logs, err := h.adminUsecase.GetLogs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, logs)
}
