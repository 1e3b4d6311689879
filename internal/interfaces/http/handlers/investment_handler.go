package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/interfaces/http/middleware"
	"investgrow.backend/internal/interfaces/http/response"
	"investgrow.backend/internal/usecases"
)

// InvestmentHandler handles plan catalog and investment endpoints
type InvestmentHandler struct {
	investmentUsecase *usecases.InvestmentUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentUsecase *usecases.InvestmentUsecase) *InvestmentHandler {
	return &InvestmentHandler{investmentUsecase: investmentUsecase}
}

// CreatePlan adds a plan to the catalog (admin only)
// POST /api/v1/plans
func (h *InvestmentHandler) CreatePlan(c *gin.Context) {
	var input entities.CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plan, err := h.investmentUsecase.CreatePlan(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, plan, "Plan created successfully")
}

// GetPlans lists active plans
// GET /api/v1/plans
func (h *InvestmentHandler) GetPlans(c *gin.Context) {
	var filter entities.PlanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plans, err := h.investmentUsecase.GetPlans(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, plans)
}

// GetPlanByID returns one plan
// GET /api/v1/plans/:id
func (h *InvestmentHandler) GetPlanByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid plan id"))
		return
	}

	plan, err := h.investmentUsecase.GetPlanByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, plan)
}

// UpdatePlan applies a partial plan update (admin only)
// PATCH /api/v1/plans/:id
func (h *InvestmentHandler) UpdatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid plan id"))
		return
	}

	var input entities.UpdatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plan, err := h.investmentUsecase.UpdatePlan(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, plan, "Plan updated successfully")
}

// CreateInvestment opens a position in a plan
// POST /api/v1/investments
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateInvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	view, err := h.investmentUsecase.CreateInvestment(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, view, "Investment created successfully")
}

// GetUserInvestments lists the caller's investments
// GET /api/v1/investments
func (h *InvestmentHandler) GetUserInvestments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	views, err := h.investmentUsecase.GetUserInvestments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, views)
}

// GetInvestmentByID returns one of the caller's investments
// GET /api/v1/investments/:id
func (h *InvestmentHandler) GetInvestmentByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid investment id"))
		return
	}

	view, err := h.investmentUsecase.GetInvestmentByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}
