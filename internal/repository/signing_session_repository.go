package repository

import (
	"context"
	"database/sql"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/jmoiron/sqlx"
)

type SigningSessionRepository struct {
	*config.Database
}

func NewSigningSessionRepository(database *config.Database) *SigningSessionRepository {
	return &SigningSessionRepository{database}
}

// Create : stores a new signing session
func (r *SigningSessionRepository) Create(ctx context.Context, exec sqlx.ExtContext, session *model.SigningSession) error {
	query := `
		INSERT INTO signing_sessions (uuid, token, filename_original, size_bytes, sha256, storage_path, page_count, fields, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err := exec.QueryRowxContext(
		ctx,
		query,
		session.UUID,
		session.Token,
		session.FilenameOriginal,
		session.SizeBytes,
		session.Sha256,
		session.StoragePath,
		session.PageCount,
		session.Fields,
		session.Status,
		session.CreatedBy,
	).Scan(&session.CreatedAt)
	if err != nil {
		return util.LogError("[SessionRepo] insert failed", err)
	}

	return nil
}

// GetByToken : returns sql.ErrNoRows (wrapped) for unknown tokens
func (r *SigningSessionRepository) GetByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.SigningSession, error) {
	query := `
		SELECT uuid, token, filename_original, size_bytes, sha256, storage_path,
		       page_count, fields, status, created_by, created_at, delivered_at
		FROM signing_sessions
		WHERE token = $1
	`

	var session model.SigningSession
	if err := sqlx.GetContext(ctx, exec, &session, query, token); err != nil {
		return nil, err
	}

	return &session, nil
}

// MarkDelivered : moves the session to delivered; token and document stay unchanged
func (r *SigningSessionRepository) MarkDelivered(ctx context.Context, exec sqlx.ExtContext, token string) error {
	result, err := exec.ExecContext(ctx, `
		UPDATE signing_sessions
		SET status = $2, delivered_at = NOW()
		WHERE token = $1
	`, token, model.SessionDelivered)
	if err != nil {
		return util.LogError("[SessionRepo] status update failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SessionRepo] rows affected unavailable", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// BeginTX returns the transaction with its rollback and commit
func (r *SigningSessionRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, tx.Rollback, tx.Commit, nil
}
