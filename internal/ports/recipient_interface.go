package ports

import (
	"context"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/jmoiron/sqlx"
)

type RecipientRepository interface {
	ListStaff(ctx context.Context, exec sqlx.ExtContext) ([]model.Staff, error)
	ListClients(ctx context.Context, exec sqlx.ExtContext) ([]model.Client, error)
	StaffExists(ctx context.Context, exec sqlx.ExtContext, id int64) (bool, error)
	ClientExists(ctx context.Context, exec sqlx.ExtContext, id string) (bool, error)
}

type RecipientService interface {
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListClients(ctx context.Context) ([]model.Client, error)
}
