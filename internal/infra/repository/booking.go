package repository

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// BookingRepository is the only write path into the bookings table. The
// admitter calls LockRoomType / CountOverlapping / Create on one
// transaction so no concurrent admission can slip between the count and
// the insert for the same room type.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(d db.DBTX) *BookingRepository {
	return &BookingRepository{db: d}
}

const lockRoomTypeSQL = `
SELECT id, hotel_id, title, quantity, price_cents
FROM room_types
WHERE id = $1
FOR UPDATE`

// LockRoomType fetches the room type and takes its row lock, serializing
// concurrent admissions per room type. Admissions on other room types are
// untouched.
func (r *BookingRepository) LockRoomType(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.RoomType, error) {
	var (
		rtID, hotelID uuid.UUID
		title         string
		quantity      int
		priceCents    int64
	)
	err := tx.QueryRow(ctx, lockRoomTypeSQL, id).Scan(&rtID, &hotelID, &title, &quantity, &priceCents)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room type", err)
	}

	return room.ReconstructRoomType(rtID, hotelID, title, quantity, priceCents), nil
}

// Range translation of StayPeriod.Overlaps for half-open [date_from,
// date_to) intervals.
const countOverlappingSQL = `
SELECT COUNT(*)
FROM bookings
WHERE room_type_id = $1
  AND date_from < $3
  AND date_to > $2`

func (r *BookingRepository) CountOverlapping(ctx context.Context, tx db.DBTX, roomTypeID uuid.UUID, period booking.StayPeriod) (int, error) {
	var count int
	err := tx.QueryRow(ctx, countOverlappingSQL, roomTypeID, period.From(), period.To()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

const insertBookingSQL = `
INSERT INTO bookings (id, room_type_id, user_id, date_from, date_to, price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertBookingSQL,
		b.ID(), b.RoomTypeID(), b.UserID(), b.Period().From(), b.Period().To(), b.PriceCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const deleteBookingSQL = `
DELETE FROM bookings
WHERE id = $1 AND user_id = $2`

// Delete removes an owner's booking. Cancellation is administrative and
// bypasses the admitter; freed capacity is observed by the next overlap
// count.
func (r *BookingRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, id, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
