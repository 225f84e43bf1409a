package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(d db.DBTX) *UserReadStore {
	return &UserReadStore{db: d}
}

const getUserByEmailSQL = `
SELECT id, email, password_hash, role
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserCredentialView, error) {
	var v queries.UserCredentialView
	err := r.db.QueryRow(ctx, getUserByEmailSQL, email).Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, nil
}

const getUserByIDSQL = `
SELECT id, email, role
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, getUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.Role)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}
