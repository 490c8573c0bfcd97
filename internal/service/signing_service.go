package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/pdfdoc"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/ports"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/google/uuid"
)

type SigningService struct {
	sessionRepository   ports.SigningSessionRepository
	deliveryRepository  ports.DeliveryRepository
	recipientRepository ports.RecipientRepository
	cacheRepository     ports.CacheRepository
	storage             ports.S3Storage
	renderer            pdfdoc.Renderer
	cfg                 config.SigningConfig
	ttl                 time.Duration
}

func NewSigningService(
	sessionRepository ports.SigningSessionRepository,
	deliveryRepository ports.DeliveryRepository,
	recipientRepository ports.RecipientRepository,
	cacheRepository ports.CacheRepository,
	storage ports.S3Storage,
	renderer pdfdoc.Renderer,
	cfg config.SigningConfig,
	ttl time.Duration,
) *SigningService {
	if cfg.LoadTimeoutSeconds <= 0 {
		cfg.LoadTimeoutSeconds = 30
	}
	if cfg.TokenLength <= 0 {
		cfg.TokenLength = 32
	}
	return &SigningService{
		sessionRepository:   sessionRepository,
		deliveryRepository:  deliveryRepository,
		recipientRepository: recipientRepository,
		cacheRepository:     cacheRepository,
		storage:             storage,
		renderer:            renderer,
		cfg:                 cfg,
		ttl:                 ttl,
	}
}

// GenerateLink : stores the document and its fields as a new signing session.
// Every call creates a new session with a new token.
func (s *SigningService) GenerateLink(ctx context.Context, document *model.UploadedDocument, fields []model.Field, createdBy string) (*model.SigningSession, error) {
	if err := validateDocument(document, s.cfg.MaxUploadBytes); err != nil {
		return nil, err
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	info, err := s.render(ctx, document.Data)
	if err != nil {
		return nil, err
	}
	if err := validatePages(fields, info.PageCount()); err != nil {
		return nil, err
	}

	hash := sha256.Sum256(document.Data)
	sessionUUID := uuid.New().String()
	session := &model.SigningSession{
		UUID:             sessionUUID,
		FilenameOriginal: document.FileName,
		SizeBytes:        int64(len(document.Data)),
		Sha256:           hex.EncodeToString(hash[:]),
		StoragePath:      storagePath(sessionUUID, document.FileName),
		PageCount:        info.PageCount(),
		Fields:           model.FieldList(fields),
		Status:           model.SessionCreated,
		CreatedBy:        createdBy,
	}

	if err := s.storage.PutObject(ctx, session.StoragePath, "application/pdf", document.Data); err != nil {
		return nil, util.LogError("[SigningService] document upload failed", err)
	}

	if err := s.persist(ctx, session); err != nil {
		if delErr := s.storage.DeleteObject(ctx, session.StoragePath); delErr != nil {
			slog.Warn("[SigningService] orphaned document left in storage", "path", session.StoragePath, "error", delErr)
		}
		return nil, err
	}

	if err := s.cacheRepository.SetSession(ctx, session); err != nil {
		slog.Warn("[SigningService] session caching failed", "error", err)
	}

	slog.Info("[SigningService] signing session created",
		"session", session.UUID, "pages", session.PageCount, "fields", len(fields))
	return session, nil
}

func (s *SigningService) persist(ctx context.Context, session *model.SigningSession) error {
	exec, rollback, commit, err := s.sessionRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[SigningService] transaction start failed", err)
	}
	defer rollback()

	token, err := util.GenerateUniqueToken(ctx, exec, s.cfg.TokenLength)
	if err != nil {
		return util.LogError("[SigningService] token minting failed", err)
	}
	session.Token = token

	if err := s.sessionRepository.Create(ctx, exec, session); err != nil {
		return util.LogError("[SigningService] session insert failed", err)
	}

	if err := commit(); err != nil {
		return util.LogError("[SigningService] transaction commit failed", err)
	}
	return nil
}

// render inspects the document within the configured load timeout
func (s *SigningService) render(ctx context.Context, data []byte) (*pdfdoc.Info, error) {
	renderCtx, cancel := context.WithTimeout(ctx, s.cfg.LoadTimeout())
	defer cancel()

	type result struct {
		info *pdfdoc.Info
		err  error
	}
	done := make(chan result, 1)
	go func() {
		info, err := s.renderer.Render(renderCtx, data)
		done <- result{info, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, pdfdoc.ClassifyLoadError(pdfdoc.ErrLoadTimeout))
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, pdfdoc.ClassifyLoadError(r.err))
		}
		return r.info, nil
	case <-renderCtx.Done():
		if errors.Is(renderCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, pdfdoc.ClassifyLoadError(pdfdoc.ErrLoadTimeout))
		}
		return nil, renderCtx.Err()
	}
}

// SaveToFiles : associates an issued token with a staff or client record.
// The session's token and document are left as they are.
func (s *SigningService) SaveToFiles(ctx context.Context, input ports.SaveToFilesInput) error {
	if err := validateSaveToFiles(input); err != nil {
		return err
	}

	exec, rollback, commit, err := s.sessionRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[SigningService] transaction start failed", err)
	}
	defer rollback()

	if _, err := s.sessionRepository.GetByToken(ctx, exec, input.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		return util.LogError("[SigningService] session lookup failed", err)
	}

	delivery := &model.Delivery{
		UUID:          uuid.New().String(),
		SessionToken:  input.Token,
		FileName:      input.FileName,
		RecipientType: input.RecipientType,
		CreatedBy:     input.CreatedBy,
	}

	var exists bool
	switch input.RecipientType {
	case model.RecipientStaff:
		exists, err = s.recipientRepository.StaffExists(ctx, exec, input.StaffID)
		staffID := input.StaffID
		delivery.StaffID = &staffID
	case model.RecipientClient:
		exists, err = s.recipientRepository.ClientExists(ctx, exec, input.ClientID)
		clientID := input.ClientID
		delivery.ClientID = &clientID
	}
	if err != nil {
		return util.LogError("[SigningService] recipient lookup failed", err)
	}
	if !exists {
		return ErrRecipientNotFound
	}

	if err := s.deliveryRepository.Create(ctx, exec, delivery); err != nil {
		return util.LogError("[SigningService] delivery insert failed", err)
	}
	if err := s.sessionRepository.MarkDelivered(ctx, exec, input.Token); err != nil {
		return util.LogError("[SigningService] session status update failed", err)
	}

	if err := commit(); err != nil {
		return util.LogError("[SigningService] transaction commit failed", err)
	}

	if err := s.cacheRepository.DeleteSession(ctx, input.Token); err != nil {
		slog.Warn("[SigningService] session cache invalidation failed", "error", err)
	}

	slog.Info("[SigningService] signing session filed", "recipient_type", input.RecipientType, "delivery", delivery.UUID)
	return nil
}

// GetSession : session view for a token holder, cached in redis
func (s *SigningService) GetSession(ctx context.Context, token string) (*ports.SigningSessionView, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.cacheRepository.GetSession(ctx, token)
	if err != nil {
		slog.Warn("[SigningService] session cache read failed", "error", err)
	}

	if session == nil {
		exec, rollback, commit, err := s.sessionRepository.BeginTX(ctx)
		if err != nil {
			return nil, util.LogError("[SigningService] transaction start failed", err)
		}
		defer rollback()

		session, err = s.sessionRepository.GetByToken(ctx, exec, token)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrSessionNotFound
			}
			return nil, util.LogError("[SigningService] session lookup failed", err)
		}

		if err := commit(); err != nil {
			return nil, util.LogError("[SigningService] transaction commit failed", err)
		}

		if err := s.cacheRepository.SetSession(ctx, session); err != nil {
			slog.Warn("[SigningService] session caching failed", "error", err)
		}
	}

	documentURL, err := s.storage.GeneratePresignedGetURL(ctx, session.StoragePath, s.ttl)
	if err != nil {
		return nil, util.LogError("[SigningService] presigned GET URL failed", err)
	}

	return &ports.SigningSessionView{Session: session, DocumentURL: documentURL}, nil
}

func storagePath(sessionUUID, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "document.pdf"
	}
	return fmt.Sprintf("signing/%s/%s", sessionUUID, url.PathEscape(base))
}
