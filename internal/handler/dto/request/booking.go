package request

import (
	"time"

	"hotel-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	DateFrom   string    `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo     string    `json:"date_to" binding:"required,datetime=2006-01-02"`
	PriceCents *int64    `json:"price_cents,omitempty"`
}

func (r CreateBookingRequest) ToParams(userID uuid.UUID) (commands.CreateBookingParams, error) {
	from, err := time.Parse(dateLayout, r.DateFrom)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	to, err := time.Parse(dateLayout, r.DateTo)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	return commands.CreateBookingParams{
		RoomTypeID: r.RoomTypeID,
		UserID:     userID,
		DateFrom:   from,
		DateTo:     to,
		PriceCents: r.PriceCents,
	}, nil
}
