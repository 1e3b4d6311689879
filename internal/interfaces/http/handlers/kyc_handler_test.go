package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"investgrow.backend/internal/domain/entities"
	"investgrow.backend/internal/usecases"
)

func newKycRouter(kycRepo kycRepoStub, userRepo userRepoStub, store documentStoreStub, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewKycHandler(usecases.NewKycUsecase(kycRepo, userRepo, store))

	r := gin.New()
	r.Use(asUser(userID, "USER"))
	r.POST("/kyc/upload", h.UploadDocument)
	r.GET("/kyc/status", h.GetStatus)
	return r
}

func multipartUpload(t *testing.T, fields map[string]string, filename, contentType string, fileBody []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fileBody)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestKycHandler_UploadDocument(t *testing.T) {
	userID := uuid.New()
	baseFields := map[string]string{
		"documentType":   "PAN",
		"documentNumber": "ABCDE1234F",
	}

	t.Run("success", func(t *testing.T) {
		var uploadedKey string
		store := documentStoreStub{
			uploadFn: func(_ context.Context, key, contentType string, data []byte) error {
				uploadedKey = key
				require.Equal(t, "image/jpeg", contentType)
				require.Equal(t, []byte("jpeg-bytes"), data)
				return nil
			},
		}
		kycRepo := kycRepoStub{
			createFn: func(_ context.Context, doc *entities.KycDocument) error {
				doc.ID = uuid.New()
				doc.CreatedAt = time.Now()
				return nil
			},
		}
		userRepo := userRepoStub{
			getByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
				return &entities.User{ID: id, KYCStatus: entities.KYCNotSubmitted}, nil
			},
			updateProfileFn: func(_ context.Context, _ uuid.UUID, updates map[string]interface{}) error {
				require.Equal(t, "PENDING", updates["kyc_status"])
				return nil
			},
		}
		r := newKycRouter(kycRepo, userRepo, store, userID)

		body, contentType := multipartUpload(t, baseFields, "pan.jpg", "image/jpeg", []byte("jpeg-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/kyc/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), "Document uploaded successfully")
		require.True(t, strings.HasPrefix(uploadedKey, userID.String()+"/PAN_"))
		require.True(t, strings.HasSuffix(uploadedKey, ".jpg"))
	})

	t.Run("missing file", func(t *testing.T) {
		r := newKycRouter(kycRepoStub{}, userRepoStub{}, documentStoreStub{}, userID)
		body, contentType := multipartUpload(t, baseFields, "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/kyc/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Document file is required")
	})

	t.Run("disallowed content type", func(t *testing.T) {
		r := newKycRouter(kycRepoStub{}, userRepoStub{}, documentStoreStub{}, userID)
		body, contentType := multipartUpload(t, baseFields, "pan.gif", "image/gif", []byte("gif"))
		req := httptest.NewRequest(http.MethodPost, "/kyc/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Only JPEG, PNG and PDF files are allowed")
	})

	t.Run("invalid document type", func(t *testing.T) {
		r := newKycRouter(kycRepoStub{}, userRepoStub{}, documentStoreStub{}, userID)
		body, contentType := multipartUpload(t, map[string]string{
			"documentType":   "VOTER_ID",
			"documentNumber": "ABCDE1234F",
		}, "doc.pdf", "application/pdf", []byte("pdf"))
		req := httptest.NewRequest(http.MethodPost, "/kyc/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate active document", func(t *testing.T) {
		kycRepo := kycRepoStub{
			hasActiveFn: func(context.Context, uuid.UUID, entities.DocumentType) (bool, error) {
				return true, nil
			},
		}
		r := newKycRouter(kycRepo, userRepoStub{}, documentStoreStub{}, userID)
		body, contentType := multipartUpload(t, baseFields, "pan.pdf", "application/pdf", []byte("pdf"))
		req := httptest.NewRequest(http.MethodPost, "/kyc/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, w.Body.String(), "already exists and is pending or verified")
	})
}

func TestKycHandler_GetStatus(t *testing.T) {
	userID := uuid.New()
	kycRepo := kycRepoStub{
		listByUserFn: func(_ context.Context, _ uuid.UUID) ([]*entities.KycDocument, error) {
			return []*entities.KycDocument{{
				ID:                 uuid.New(),
				UserID:             userID,
				DocumentType:       entities.DocumentTypePAN,
				DocumentNumber:     "ABCDE1234F",
				StorageKey:         userID.String() + "/PAN_1.jpg",
				VerificationStatus: entities.VerificationPending,
			}}, nil
		},
	}
	userRepo := userRepoStub{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			return &entities.User{ID: id, KYCStatus: entities.KYCPending}, nil
		},
	}
	r := newKycRouter(kycRepo, userRepo, documentStoreStub{}, userID)

	req := httptest.NewRequest(http.MethodGet, "/kyc/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"overallStatus":"PENDING"`)
	require.Contains(t, w.Body.String(), "https://example.com/"+userID.String()+"/PAN_1.jpg")
}
