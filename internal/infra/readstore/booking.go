package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(d db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: d}
}

const getBookingSQL = `
SELECT b.id, b.room_type_id, rt.title, h.id, h.title, b.user_id, u.email,
       b.date_from, b.date_to, b.price_cents, b.created_at
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
JOIN hotels h ON h.id = rt.hotel_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, getBookingSQL, id).Scan(
		&v.ID, &v.RoomTypeID, &v.RoomTypeTitle, &v.HotelID, &v.HotelTitle,
		&v.UserID, &v.UserEmail, &v.DateFrom, &v.DateTo, &v.PriceCents, &v.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const listBookingsByUserSQL = `
SELECT b.id, b.room_type_id, rt.title, h.id, h.title, b.user_id, u.email,
       b.date_from, b.date_to, b.price_cents, b.created_at
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
JOIN hotels h ON h.id = rt.hotel_id
JOIN users u ON u.id = b.user_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id`

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.RoomTypeID, &v.RoomTypeTitle, &v.HotelID, &v.HotelTitle,
			&v.UserID, &v.UserEmail, &v.DateFrom, &v.DateTo, &v.PriceCents, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

// Same range predicate as the admitter's overlap count, aggregated per room
// type so one query feeds the whole availability search.
const countOverlappingByRoomTypeSQL = `
SELECT b.room_type_id, COUNT(*)
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
WHERE ($1::uuid IS NULL OR rt.hotel_id = $1)
  AND b.date_from < $3
  AND b.date_to > $2
GROUP BY b.room_type_id`

func (r *BookingReadStore) CountOverlappingByRoomType(ctx context.Context, hotelID *uuid.UUID, period booking.StayPeriod) (map[uuid.UUID]int, error) {
	rows, err := r.db.Query(ctx, countOverlappingByRoomTypeSQL, hotelID, period.From(), period.To())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			roomTypeID uuid.UUID
			count      int
		)
		if err := rows.Scan(&roomTypeID, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlap count row", err)
		}
		counts[roomTypeID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlap count rows", err)
	}
	return counts, nil
}
