package repository

import (
	"context"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// CatalogRepository writes catalog rows (hotels, room types, facilities).
// Quantity edits go through here, never through booking admission.
type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(d db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: d}
}

const insertHotelSQL = `
INSERT INTO hotels (id, title, location)
VALUES ($1, $2, $3)
RETURNING id`

func (r *CatalogRepository) CreateHotel(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertHotelSQL, h.ID(), h.Title(), h.Location()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err)
	}
	return id, nil
}

const insertRoomTypeSQL = `
INSERT INTO room_types (id, hotel_id, title, quantity, price_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *CatalogRepository) CreateRoomType(ctx context.Context, rt *room.RoomType) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertRoomTypeSQL,
		rt.ID(), rt.HotelID(), rt.Title(), rt.Quantity(), rt.PriceCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

const insertFacilitySQL = `
INSERT INTO facilities (id, title)
VALUES ($1, $2)
RETURNING id`

func (r *CatalogRepository) CreateFacility(ctx context.Context, title string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertFacilitySQL, uuid.New(), title).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create facility", err)
	}
	return id, nil
}

const attachFacilitySQL = `
INSERT INTO room_type_facilities (room_type_id, facility_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (r *CatalogRepository) AttachFacility(ctx context.Context, roomTypeID, facilityID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, attachFacilitySQL, roomTypeID, facilityID); err != nil {
		return infra.WrapRepoErr("failed to attach facility to room type", err)
	}
	return nil
}
