package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(d db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: d}
}

const listHotelsSQL = `
SELECT id, title, location
FROM hotels
WHERE ($1::text IS NULL OR title ILIKE '%' || $1 || '%')
ORDER BY title, id
LIMIT $2 OFFSET $3`

func (r *HotelReadStore) List(ctx context.Context, titleFilter *string, page queries.Page) ([]*queries.HotelView, error) {
	rows, err := r.db.Query(ctx, listHotelsSQL, titleFilter, page.Limit, page.Offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var result []*queries.HotelView
	for rows.Next() {
		var v queries.HotelView
		if err := rows.Scan(&v.ID, &v.Title, &v.Location); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel rows", err)
	}
	return result, nil
}

const getHotelSQL = `
SELECT id, title, location
FROM hotels
WHERE id = $1`

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	var v queries.HotelView
	err := r.db.QueryRow(ctx, getHotelSQL, id).Scan(&v.ID, &v.Title, &v.Location)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return &v, nil
}
