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

// CommunicationHandler handles consultation and contact endpoints
type CommunicationHandler struct {
	communicationUsecase *usecases.CommunicationUsecase
}

// NewCommunicationHandler creates a new communication handler
func NewCommunicationHandler(communicationUsecase *usecases.CommunicationUsecase) *CommunicationHandler {
	return &CommunicationHandler{communicationUsecase: communicationUsecase}
}

// CreateConsultation records a consultation request. Anonymous callers
// are accepted; authenticated ones get the request linked to their
// account.
// POST /api/v1/communication/consultations
func (h *CommunicationHandler) CreateConsultation(c *gin.Context) {
	var input entities.CreateConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	req, err := h.communicationUsecase.CreateConsultation(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, req, "Consultation request submitted")
}

// GetUserConsultations lists the caller's own requests
// GET /api/v1/communication/consultations/my
func (h *CommunicationHandler) GetUserConsultations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	requests, err := h.communicationUsecase.GetUserConsultations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, requests)
}

// ListConsultations pages through all requests (admin only)
// GET /api/v1/admin/consultations
func (h *CommunicationHandler) ListConsultations(c *gin.Context) {
	var filter entities.ConsultationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	items, meta, err := h.communicationUsecase.ListConsultations(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": meta,
	})
}

// UpdateConsultationStatus moves a request through its workflow (admin only)
// PUT /api/v1/admin/consultations/:id/status
func (h *CommunicationHandler) UpdateConsultationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid consultation id"))
		return
	}

	var input entities.UpdateConsultationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.communicationUsecase.UpdateConsultationStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, req, "Consultation status updated")
}

// CreateContactMessage records a contact form submission
// POST /api/v1/communication/contact
func (h *CommunicationHandler) CreateContactMessage(c *gin.Context) {
	var input entities.CreateContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	msg, err := h.communicationUsecase.CreateContactMessage(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, msg, "Message sent successfully")
}
