package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/ports"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/bluele/gcache"
	"github.com/jmoiron/sqlx"
)

const (
	staffCacheKey   = "staff"
	clientsCacheKey = "clients"
)

// RecipientService : recipient picker lists, cached in process for ttl
type RecipientService struct {
	recipientRepository ports.RecipientRepository
	exec                sqlx.ExtContext
	cache               gcache.Cache
}

func NewRecipientService(recipientRepository ports.RecipientRepository, exec sqlx.ExtContext, ttl time.Duration) *RecipientService {
	return &RecipientService{
		recipientRepository: recipientRepository,
		exec:                exec,
		cache:               gcache.New(2).LRU().Expiration(ttl).Build(),
	}
}

func (s *RecipientService) ListStaff(ctx context.Context) ([]model.Staff, error) {
	if cached, err := s.cache.Get(staffCacheKey); err == nil {
		if staff, ok := cached.([]model.Staff); ok {
			return staff, nil
		}
	}

	staff, err := s.recipientRepository.ListStaff(ctx, s.exec)
	if err != nil {
		return nil, util.LogError("[RecipientService] staff list failed", err)
	}

	if err := s.cache.Set(staffCacheKey, staff); err != nil {
		slog.Warn("[RecipientService] staff caching failed", "error", err)
	}
	return staff, nil
}

func (s *RecipientService) ListClients(ctx context.Context) ([]model.Client, error) {
	if cached, err := s.cache.Get(clientsCacheKey); err == nil {
		if clients, ok := cached.([]model.Client); ok {
			return clients, nil
		}
	}

	clients, err := s.recipientRepository.ListClients(ctx, s.exec)
	if err != nil {
		return nil, util.LogError("[RecipientService] client list failed", err)
	}

	if err := s.cache.Set(clientsCacheKey, clients); err != nil {
		slog.Warn("[RecipientService] client caching failed", "error", err)
	}
	return clients, nil
}

// Invalidate drops the cached lists
func (s *RecipientService) Invalidate() {
	s.cache.Purge()
}
