package ports

import (
	"context"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
)

// CacheRepository : redis layer
type CacheRepository interface {
	SetSession(ctx context.Context, session *model.SigningSession) error
	GetSession(ctx context.Context, token string) (*model.SigningSession, error)
	DeleteSession(ctx context.Context, token string) error
}
