package repository

import (
	"context"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/jmoiron/sqlx"
)

// RecipientRepository reads the staff and client directories.
// Staff ids are integers, client ids are opaque strings.
type RecipientRepository struct{}

func NewRecipientRepository() *RecipientRepository {
	return &RecipientRepository{}
}

func (r *RecipientRepository) ListStaff(ctx context.Context, exec sqlx.ExtContext) ([]model.Staff, error) {
	staff := []model.Staff{}
	err := sqlx.SelectContext(ctx, exec, &staff, `
		SELECT id, name, email
		FROM staff
		WHERE active
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, util.LogError("[RecipientRepo] staff list failed", err)
	}
	return staff, nil
}

func (r *RecipientRepository) ListClients(ctx context.Context, exec sqlx.ExtContext) ([]model.Client, error) {
	clients := []model.Client{}
	err := sqlx.SelectContext(ctx, exec, &clients, `
		SELECT id, business_name, email
		FROM clients
		WHERE active
		ORDER BY business_name ASC, id ASC
	`)
	if err != nil {
		return nil, util.LogError("[RecipientRepo] client list failed", err)
	}
	return clients, nil
}

// StaffExists : checks the integer id space
func (r *RecipientRepository) StaffExists(ctx context.Context, exec sqlx.ExtContext, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM staff WHERE id = $1 AND active)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, id); err != nil {
		return false, util.LogError("[RecipientRepo] staff lookup failed", err)
	}
	return exists, nil
}

// ClientExists : checks the string id space
func (r *RecipientRepository) ClientExists(ctx context.Context, exec sqlx.ExtContext, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND active)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, id); err != nil {
		return false, util.LogError("[RecipientRepo] client lookup failed", err)
	}
	return exists, nil
}
