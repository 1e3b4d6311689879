package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/interfaces/http/middleware"
	"investgrow.backend/internal/interfaces/http/response"
	"investgrow.backend/internal/usecases"
)

// maxDocumentSize caps KYC uploads at 5 MB.
const maxDocumentSize = 5 << 20

var allowedDocumentTypes = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"application/pdf": "pdf",
}

// KycHandler handles KYC document endpoints
type KycHandler struct {
	kycUsecase *usecases.KycUsecase
}

// NewKycHandler creates a new KYC handler
func NewKycHandler(kycUsecase *usecases.KycUsecase) *KycHandler {
	return &KycHandler{kycUsecase: kycUsecase}
}

// UploadDocument accepts a multipart KYC document upload
// POST /api/v1/kyc/upload
func (h *KycHandler) UploadDocument(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.UploadDocumentInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Document file is required"))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		response.Error(c, domainerrors.BadRequest("File size must not exceed 5MB"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, allowed := allowedDocumentTypes[contentType]
	if !allowed {
		response.Error(c, domainerrors.BadRequest("Only JPEG, PNG and PDF files are allowed"))
		return
	}
	// Prefer the client's extension when it matches the declared type.
	if nameExt := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."); nameExt == "jpeg" && ext == "jpg" {
		ext = "jpeg"
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := h.kycUsecase.UploadDocument(c.Request.Context(), userID, &input, contentType, ext, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, doc, "Document uploaded successfully")
}

// GetStatus returns the caller's aggregate KYC state
// GET /api/v1/kyc/status
func (h *KycHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	status, err := h.kycUsecase.GetStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}
