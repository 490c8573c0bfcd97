package ports

import (
	"context"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/jmoiron/sqlx"
)

// SigningSessionRepository : SQL layer
type SigningSessionRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, session *model.SigningSession) error
	GetByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.SigningSession, error)
	MarkDelivered(ctx context.Context, exec sqlx.ExtContext, token string) error
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, delivery *model.Delivery) error
}

// SaveToFilesInput : validated delivery request
type SaveToFilesInput struct {
	Token         string
	FileName      string
	RecipientType model.RecipientType
	StaffID       int64
	ClientID      string
	CreatedBy     string
}

// SigningSessionView : session as seen by a token holder
type SigningSessionView struct {
	Session     *model.SigningSession
	DocumentURL string
}

type SigningService interface {
	GenerateLink(ctx context.Context, document *model.UploadedDocument, fields []model.Field, createdBy string) (*model.SigningSession, error)
	SaveToFiles(ctx context.Context, input SaveToFilesInput) error
	GetSession(ctx context.Context, token string) (*SigningSessionView, error)
}
