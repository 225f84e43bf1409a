package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(d db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: d}
}

const listRoomTypesByHotelSQL = `
SELECT id, hotel_id, title, quantity, price_cents
FROM room_types
WHERE hotel_id = $1
ORDER BY title, id`

func (r *RoomReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomTypeView, error) {
	rows, err := r.db.Query(ctx, listRoomTypesByHotelSQL, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var result []*queries.RoomTypeView
	for rows.Next() {
		var v queries.RoomTypeView
		if err := rows.Scan(&v.ID, &v.HotelID, &v.Title, &v.Quantity, &v.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room type rows", err)
	}

	if err := r.attachFacilities(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

const getRoomTypeSQL = `
SELECT id, hotel_id, title, quantity, price_cents
FROM room_types
WHERE id = $1`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	var v queries.RoomTypeView
	err := r.db.QueryRow(ctx, getRoomTypeSQL, id).Scan(&v.ID, &v.HotelID, &v.Title, &v.Quantity, &v.PriceCents)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}

	views := []*queries.RoomTypeView{&v}
	if err := r.attachFacilities(ctx, views); err != nil {
		return nil, err
	}
	return &v, nil
}

// Catalog order (hotel, title, id) feeds the availability filter, which
// preserves it, so search output is deterministic.
const listRoomTypesForAvailabilitySQL = `
SELECT id, hotel_id, title, quantity, price_cents
FROM room_types
WHERE ($1::uuid IS NULL OR hotel_id = $1)
ORDER BY hotel_id, title, id`

func (r *RoomReadStore) ListForAvailability(ctx context.Context, hotelID *uuid.UUID) ([]*room.RoomType, error) {
	rows, err := r.db.Query(ctx, listRoomTypesForAvailabilitySQL, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types for availability", err)
	}
	defer rows.Close()

	var result []*room.RoomType
	for rows.Next() {
		var (
			id, hID    uuid.UUID
			title      string
			quantity   int
			priceCents int64
		)
		if err := rows.Scan(&id, &hID, &title, &quantity, &priceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		result = append(result, room.ReconstructRoomType(id, hID, title, quantity, priceCents))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room type rows", err)
	}
	return result, nil
}

const listFacilitiesSQL = `
SELECT id, title
FROM facilities
ORDER BY title, id`

func (r *RoomReadStore) ListFacilities(ctx context.Context) ([]*queries.FacilityView, error) {
	rows, err := r.db.Query(ctx, listFacilitiesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list facilities", err)
	}
	defer rows.Close()

	var result []*queries.FacilityView
	for rows.Next() {
		var v queries.FacilityView
		if err := rows.Scan(&v.ID, &v.Title); err != nil {
			return nil, infra.WrapRepoErr("failed to scan facility row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read facility rows", err)
	}
	return result, nil
}

const facilitiesByRoomTypeSQL = `
SELECT rtf.room_type_id, f.id, f.title
FROM room_type_facilities rtf
JOIN facilities f ON f.id = rtf.facility_id
WHERE rtf.room_type_id = ANY($1)
ORDER BY f.title, f.id`

func (r *RoomReadStore) attachFacilities(ctx context.Context, views []*queries.RoomTypeView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.RoomTypeView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
		v.Facilities = []queries.FacilityView{}
	}

	rows, err := r.db.Query(ctx, facilitiesByRoomTypeSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load room type facilities", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			roomTypeID uuid.UUID
			f          queries.FacilityView
		)
		if err := rows.Scan(&roomTypeID, &f.ID, &f.Title); err != nil {
			return infra.WrapRepoErr("failed to scan facility row", err)
		}
		if v, ok := byID[roomTypeID]; ok {
			v.Facilities = append(v.Facilities, f)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read facility rows", err)
	}
	return nil
}
