package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/handler"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/ports"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSigningService struct{ mock.Mock }

func (m *MockSigningService) GenerateLink(ctx context.Context, document *model.UploadedDocument, fields []model.Field, createdBy string) (*model.SigningSession, error) {
	args := m.Called(ctx, document, fields, createdBy)
	if s, ok := args.Get(0).(*model.SigningSession); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSigningService) SaveToFiles(ctx context.Context, input ports.SaveToFilesInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockSigningService) GetSession(ctx context.Context, token string) (*ports.SigningSessionView, error) {
	args := m.Called(ctx, token)
	if v, ok := args.Get(0).(*ports.SigningSessionView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecipientService struct{ mock.Mock }

func (m *MockRecipientService) ListStaff(ctx context.Context) ([]model.Staff, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]model.Staff); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecipientService) ListClients(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]model.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	pdfBytes = []byte("%PDF-1.7\n%fake")
	fields   = []model.Field{{ID: "field-1", Type: model.FieldSignature, Page: 1, XRatio: 0.03125, YRatio: 0.175, Width: 150, Height: 50}}
)

func newSigningHandler(svc ports.SigningService, maxUpload int64) *handler.SigningHandler {
	return handler.NewSigningHandler(svc,
		&config.TTL{S3AndRedis: 300},
		&config.SigningConfig{MaxUploadBytes: maxUpload, LoadTimeoutSeconds: 30})
}

func multipartRequest(t *testing.T, pdf []byte, fieldsJSON string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if pdf != nil {
		part, err := writer.CreateFormFile("pdf", "contract.pdf")
		require.NoError(t, err)
		_, err = part.Write(pdf)
		require.NoError(t, err)
	}
	require.NoError(t, writer.WriteField("fields", fieldsJSON))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/generateSignLink", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func fieldsJSON(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(fields)
	require.NoError(t, err)
	return string(raw)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, rec.Code, body.Code)
	return body.Message
}

func TestGenerateSignLink_Success(t *testing.T) {
	svc := new(MockSigningService)
	h := newSigningHandler(svc, 1<<20)

	svc.On("GenerateLink", mock.Anything, mock.MatchedBy(func(d *model.UploadedDocument) bool {
		return d.FileName == "contract.pdf" && bytes.Equal(d.Data, pdfBytes)
	}), fields, "unknown").Return(&model.SigningSession{Token: "abc123"}, nil)

	rec := httptest.NewRecorder()
	h.GenerateSignLink(rec, multipartRequest(t, pdfBytes, fieldsJSON(t)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"link":"/sign/abc123"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestGenerateSignLink_RequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing pdf",
			request:    func(t *testing.T) *http.Request { return multipartRequest(t, nil, fieldsJSON(t)) },
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.ErrEmptyDocument.Error(),
		},
		{
			name:       "fields not JSON",
			request:    func(t *testing.T) *http.Request { return multipartRequest(t, pdfBytes, "{oops") },
			wantStatus: http.StatusBadRequest,
			wantMsg:    "fields must be a JSON array of fields",
		},
		{
			name: "not multipart",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/generateSignLink", strings.NewReader("{}"))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid multipart request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSigningService)
			h := newSigningHandler(svc, 1<<20)

			rec := httptest.NewRecorder()
			h.GenerateSignLink(rec, tt.request(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			svc.AssertNotCalled(t, "GenerateLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateSignLink_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"no signature", service.ErrNoSignatureField, http.StatusBadRequest, "at least one signature field is required"},
		{"bad fields", fmt.Errorf("%w: field 0: page must be no less than 1", service.ErrInvalidFields), http.StatusBadRequest, "invalid fields: field 0: page must be no less than 1"},
		{"too large", service.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge, "pdf file exceeds the upload limit"},
		{"internal", errors.New("[SigningService] transaction start failed: dial tcp"), http.StatusInternalServerError, "Failed to generate signing link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSigningService)
			h := newSigningHandler(svc, 1<<20)
			svc.On("GenerateLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.GenerateSignLink(rec, multipartRequest(t, pdfBytes, fieldsJSON(t)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}

func TestGenerateSignLink_BodyOverLimit(t *testing.T) {
	svc := new(MockSigningService)
	h := newSigningHandler(svc, 16)

	big := append([]byte("%PDF-"), bytes.Repeat([]byte("x"), 2<<20)...)
	rec := httptest.NewRecorder()
	h.GenerateSignLink(rec, multipartRequest(t, big, fieldsJSON(t)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	svc.AssertNotCalled(t, "GenerateLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveToFiles_AllCases(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(svc *MockSigningService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "staff recipient",
			body: `{"tokenId":"abc123","fileName":"contract.pdf","recipientType":"staff","recipientId":42}`,
			setupMocks: func(svc *MockSigningService) {
				svc.On("SaveToFiles", mock.Anything, ports.SaveToFilesInput{
					Token: "abc123", FileName: "contract.pdf", RecipientType: model.RecipientStaff, StaffID: 42, CreatedBy: "unknown",
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Saved to files"}`,
		},
		{
			name: "client recipient",
			body: `{"tokenId":"abc123","fileName":"NDA","recipientType":"client","recipientId":"clx9"}`,
			setupMocks: func(svc *MockSigningService) {
				svc.On("SaveToFiles", mock.Anything, ports.SaveToFilesInput{
					Token: "abc123", FileName: "NDA", RecipientType: model.RecipientClient, ClientID: "clx9", CreatedBy: "unknown",
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Saved to files"}`,
		},
		{
			name:       "staff id as string",
			body:       `{"tokenId":"abc123","fileName":"a.pdf","recipientType":"staff","recipientId":"42"}`,
			setupMocks: func(svc *MockSigningService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Bad Request","message":"recipientId must be a number for staff recipients","code":400}`,
		},
		{
			name:       "client id as number",
			body:       `{"tokenId":"abc123","fileName":"a.pdf","recipientType":"client","recipientId":7}`,
			setupMocks: func(svc *MockSigningService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Bad Request","message":"recipientId must be a string for client recipients","code":400}`,
		},
		{
			name:       "unknown recipient type",
			body:       `{"tokenId":"abc123","fileName":"a.pdf","recipientType":"vendor","recipientId":"x"}`,
			setupMocks: func(svc *MockSigningService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Bad Request","message":"recipientType must be staff or client","code":400}`,
		},
		{
			name:       "malformed body",
			body:       `{"tokenId":`,
			setupMocks: func(svc *MockSigningService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Bad Request","message":"invalid request body","code":400}`,
		},
		{
			name: "unknown token",
			body: `{"tokenId":"nope","fileName":"a.pdf","recipientType":"client","recipientId":"clx9"}`,
			setupMocks: func(svc *MockSigningService) {
				svc.On("SaveToFiles", mock.Anything, mock.Anything).Return(service.ErrSessionNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Not Found","message":"signing session not found","code":404}`,
		},
		{
			name: "storage failure",
			body: `{"tokenId":"abc123","fileName":"a.pdf","recipientType":"client","recipientId":"clx9"}`,
			setupMocks: func(svc *MockSigningService) {
				svc.On("SaveToFiles", mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error","message":"Failed to save to files","code":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSigningService)
			tt.setupMocks(svc)
			h := newSigningHandler(svc, 1<<20)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/saveToFiles", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.SaveToFiles(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestGetSigningSession(t *testing.T) {
	svc := new(MockSigningService)
	h := newSigningHandler(svc, 1<<20)
	router := chi.NewRouter()
	router.Get("/api/sign/{token}", h.GetSigningSession)

	createdAt := time.Date(2025, 8, 23, 12, 34, 56, 0, time.UTC)
	svc.On("GetSession", mock.Anything, "abc123").Return(&ports.SigningSessionView{
		Session: &model.SigningSession{
			Token:            "abc123",
			FilenameOriginal: "contract.pdf",
			PageCount:        2,
			Fields:           model.FieldList(fields),
			Status:           model.SessionCreated,
			CreatedAt:        createdAt,
		},
		DocumentURL: "https://s3.example/doc",
	}, nil)
	svc.On("GetSession", mock.Anything, "missing").Return(nil, service.ErrSessionNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sign/abc123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{
		"fileName":"contract.pdf",
		"pageCount":2,
		"fields":[{"id":"field-1","type":"signature","page":1,"xRatio":0.03125,"yRatio":0.175,"width":150,"height":50}],
		"status":"created",
		"documentUrl":"https://s3.example/doc",
		"createdAt":"2025-08-23T12:34:56Z",
		"expiresIn":"300"
	}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sign/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecipientHandler_Lists(t *testing.T) {
	svc := new(MockRecipientService)
	h := handler.NewRecipientHandler(svc)

	svc.On("ListStaff", mock.Anything).Return([]model.Staff{
		{ID: 42, Name: "Jane Doe", Email: "jane@vierradev.com"},
		{ID: 43, Email: "ops@vierradev.com"},
	}, nil)
	svc.On("ListClients", mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	h.ListStaff(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"id":42,"name":"Jane Doe"},{"id":43,"name":"ops@vierradev.com"}]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ListClients(rec, httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load clients", decodeMessage(t, rec))
}
