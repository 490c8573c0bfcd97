package repository

import (
	"context"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/jmoiron/sqlx"
)

// DeliveryRepository writes through the caller's transaction
type DeliveryRepository struct{}

func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{}
}

// Create : files a signing session under a staff or client recipient
func (r *DeliveryRepository) Create(ctx context.Context, exec sqlx.ExtContext, delivery *model.Delivery) error {
	query := `
		INSERT INTO signing_deliveries (uuid, session_token, file_name, recipient_type, staff_id, client_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := exec.QueryRowxContext(ctx, query,
		delivery.UUID,
		delivery.SessionToken,
		delivery.FileName,
		delivery.RecipientType,
		delivery.StaffID,
		delivery.ClientID,
		delivery.CreatedBy,
	).Scan(&delivery.CreatedAt)
	if err != nil {
		return util.LogError("[DeliveryRepo] insert failed", err)
	}

	return nil
}
