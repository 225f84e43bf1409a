//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomTypeID uuid.UUID
	UserID     uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	PriceCents int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomTypeID: uuid.New(),
		UserID:     uuid.New(),
		DateFrom:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		PriceCents: 40000,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(b.DateFrom, b.DateTo)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.RoomTypeID, b.UserID, period, b.PriceCents)
}

// BuildRequestMap is for handler tests that mutate individual fields.
func (b *BookingBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"room_type_id": b.RoomTypeID.String(),
		"date_from":    b.DateFrom.Format("2006-01-02"),
		"date_to":      b.DateTo.Format("2006-01-02"),
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		RoomTypeID:    b.RoomTypeID,
		RoomTypeTitle: "Standard Double",
		HotelID:       uuid.New(),
		HotelTitle:    "Test Hotel",
		UserID:        b.UserID,
		UserEmail:     "test@example.com",
		DateFrom:      b.DateFrom,
		DateTo:        b.DateTo,
		PriceCents:    b.PriceCents,
		CreatedAt:     time.Now().UTC(),
	}
}

func (b *BookingBuilder) WithRoomType(id uuid.UUID) *BookingBuilder {
	b.RoomTypeID = id
	return b
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithStay(from, to time.Time) *BookingBuilder {
	b.DateFrom = from
	b.DateTo = to
	return b
}

func (b *BookingBuilder) WithPriceCents(price int64) *BookingBuilder {
	b.PriceCents = price
	return b
}
