package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("booking price cannot be negative")

// Booking reserves one unit of a room type for a stay period. Rows are
// created exactly once by the admitter and never mutated; the price is the
// caller's snapshot at admission time, not a recomputation.
type Booking struct {
	id         uuid.UUID
	roomTypeID uuid.UUID
	userID     uuid.UUID
	period     StayPeriod
	priceCents int64
	createdAt  time.Time
}

func NewBooking(roomTypeID, userID uuid.UUID, period StayPeriod, priceCents int64) (*Booking, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Booking{
		id:         uuid.New(),
		roomTypeID: roomTypeID,
		userID:     userID,
		period:     period,
		priceCents: priceCents,
	}, nil
}

func ReconstructBooking(id, roomTypeID, userID uuid.UUID, period StayPeriod, priceCents int64, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		roomTypeID: roomTypeID,
		userID:     userID,
		period:     period,
		priceCents: priceCents,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) RoomTypeID() uuid.UUID { return b.roomTypeID }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) Period() StayPeriod    { return b.period }
func (b *Booking) PriceCents() int64     { return b.priceCents }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
