package repository

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(d db.DBTX) *UserRepository {
	return &UserRepository{db: d}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		// unique violations classify as DUPLICATE_KEY for the usecase layer
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
