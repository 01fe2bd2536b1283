package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/support-portal/backend/internal/models"
)

type StaffRepo struct {
	pool *pgxpool.Pool
}

func NewStaffRepo(pool *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{pool: pool}
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	var u models.StaffUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at
		FROM staff_users WHERE lower(email) = lower($1)
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert creates or updates a staff account. Used by the seed command.
func (r *StaffRepo) Upsert(ctx context.Context, email, passwordHash, role string) (*models.StaffUser, error) {
	var u models.StaffUser
	err := r.pool.QueryRow(ctx, `
		INSERT INTO staff_users (email, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role
		RETURNING id, email, password_hash, role, created_at
	`, email, passwordHash, role).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
