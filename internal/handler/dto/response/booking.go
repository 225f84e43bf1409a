package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomTypeID    uuid.UUID `json:"roomTypeId"`
	RoomTypeTitle string    `json:"roomTypeTitle"`
	HotelID       uuid.UUID `json:"hotelId"`
	HotelTitle    string    `json:"hotelTitle"`
	UserID        uuid.UUID `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	DateFrom      time.Time `json:"dateFrom"`
	DateTo        time.Time `json:"dateTo"`
	PriceCents    int64     `json:"priceCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		resp[i] = FromBookingView(v)
	}
	return resp
}
