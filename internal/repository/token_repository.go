package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talentra/hrm-backend/internal/model"
)

// TokenRepository handles auth token data access.
type TokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// Create inserts a new token row.
func (r *TokenRepository) Create(ctx context.Context, t *model.AuthToken) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO auth_tokens (user_id, name, digest)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		t.UserID, t.Name, t.Digest,
	).Scan(&t.ID, &t.CreatedAt)
}

// GetUserByDigest resolves a token digest to its owning user.
// Returns pgx.ErrNoRows for unknown or revoked tokens.
func (r *TokenRepository) GetUserByDigest(ctx context.Context, digest string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT u.id, u.name, u.email, u.password_hash, u.surname, u.address,
		        u.phone, u.photo, u.is_admin, u.created_at, u.updated_at
		 FROM auth_tokens t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.digest = $1`, digest))
}

// DeleteByUser revokes every token belonging to the user.
func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM auth_tokens WHERE user_id = $1`, userID)
	return err
}
