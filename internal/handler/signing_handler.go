package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model/requestresponse"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/ports"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/service"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/go-chi/chi/v5"
)

const (
	multipartMemory   = 32 << 20
	multipartOverhead = 1 << 20

	messageGenerateFailed = "Failed to generate signing link"
	messageSaveFailed     = "Failed to save to files"
	messageLookupFailed   = "Failed to load signing session"
	messageSaved          = "Saved to files"
)

type SigningHandler struct {
	ports.SigningService
	ttl     *config.TTL
	signing *config.SigningConfig
}

func NewSigningHandler(signingService ports.SigningService, ttl *config.TTL, signing *config.SigningConfig) *SigningHandler {
	return &SigningHandler{signingService, ttl, signing}
}

// GenerateSignLink godoc
// @Summary Create a signing link
// @Description Stores the PDF and its placed fields as a new signing session and returns the relative link.
// @Description Every call creates a new session with a new token.
// @Tags Signing
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Param fields formData string true "JSON array of fields: id, type (signature|date|text), page, xRatio, yRatio, width, height"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.GenerateSignLinkResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Invalid PDF or fields"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 413 {object} requestresponse.ErrorResponse "PDF exceeds the upload limit"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/generateSignLink [post]
func (h *SigningHandler) GenerateSignLink(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.signing.LoadTimeout()+30*time.Second)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, h.signing.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			util.HandleError(w, service.ErrDocumentTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		util.HandleError(w, "invalid multipart request", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("pdf")
	if err != nil {
		util.HandleError(w, service.ErrEmptyDocument.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.signing.MaxUploadBytes+1))
	if err != nil {
		util.HandleError(w, "could not read pdf file", http.StatusBadRequest)
		return
	}

	var fields []model.Field
	if err := json.Unmarshal([]byte(r.FormValue("fields")), &fields); err != nil {
		util.HandleError(w, "fields must be a JSON array of fields", http.StatusBadRequest)
		return
	}

	document := &model.UploadedDocument{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}

	session, err := h.SigningService.GenerateLink(ctx, document, fields, operator(r))
	if err != nil {
		status, message := signingErrorStatus(err, messageGenerateFailed)
		util.HandleError(w, message, status)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.GenerateSignLinkResponse{Link: session.SignPath()})
}

// SaveToFiles godoc
// @Summary File a signing link under a recipient
// @Description Associates an issued token with a staff member (numeric id) or a client (string id).
// @Tags Signing
// @Accept json
// @Produce json
// @Param body body requestresponse.SaveToFilesRequest true "Delivery"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Unknown token or recipient"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/saveToFiles [post]
func (h *SigningHandler) SaveToFiles(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req requestresponse.SaveToFilesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	input := ports.SaveToFilesInput{
		Token:         req.TokenID,
		FileName:      req.FileName,
		RecipientType: model.RecipientType(req.RecipientType),
		CreatedBy:     operator(r),
	}

	switch input.RecipientType {
	case model.RecipientStaff:
		if err := json.Unmarshal(req.RecipientID, &input.StaffID); err != nil {
			util.HandleError(w, "recipientId must be a number for staff recipients", http.StatusBadRequest)
			return
		}
	case model.RecipientClient:
		if err := json.Unmarshal(req.RecipientID, &input.ClientID); err != nil {
			util.HandleError(w, "recipientId must be a string for client recipients", http.StatusBadRequest)
			return
		}
	default:
		util.HandleError(w, "recipientType must be staff or client", http.StatusBadRequest)
		return
	}

	if err := h.SigningService.SaveToFiles(ctx, input); err != nil {
		status, message := signingErrorStatus(err, messageSaveFailed)
		util.HandleError(w, message, status)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: messageSaved})
}

// GetSigningSession godoc
// @Summary Signing session by token
// @Description Returns the fields and a time-limited document URL for the holder of a signing token.
// @Tags Signing
// @Produce json
// @Param token path string true "Signing token"
// @Success 200 {object} requestresponse.SigningSessionResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/sign/{token} [get]
func (h *SigningHandler) GetSigningSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := chi.URLParam(r, "token")

	view, err := h.SigningService.GetSession(ctx, token)
	if err != nil {
		status, message := signingErrorStatus(err, messageLookupFailed)
		util.HandleError(w, message, status)
		return
	}

	expiresIn := strconv.Itoa(h.ttl.S3AndRedis)
	util.WriteJSON(w, http.StatusOK, requestresponse.SigningSessionResponseFromModel(view.Session, view.DocumentURL, expiresIn))
}

// signingErrorStatus maps service errors to a status and the message shown to the operator
func signingErrorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, service.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, service.ErrEmptyDocument),
		errors.Is(err, service.ErrInvalidDocument),
		errors.Is(err, service.ErrNoFields),
		errors.Is(err, service.ErrNoSignatureField),
		errors.Is(err, service.ErrInvalidFields),
		errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrRecipientNotFound):
		return http.StatusNotFound, err.Error()
	default:
		slog.Error("[SigningHandler] request failed", "error", err)
		return http.StatusInternalServerError, fallback
	}
}
