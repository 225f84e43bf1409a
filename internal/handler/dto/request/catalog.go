package request

import (
	"hotel-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Title    string `json:"title" binding:"required"`
	Location string `json:"location" binding:"required"`
}

func (r CreateHotelRequest) ToParams() commands.CreateHotelParams {
	return commands.CreateHotelParams{
		Title:    r.Title,
		Location: r.Location,
	}
}

type CreateRoomTypeRequest struct {
	Title       string      `json:"title" binding:"required"`
	Quantity    int         `json:"quantity" binding:"required,gte=0"`
	PriceCents  int64       `json:"price_cents" binding:"required,gte=0"`
	FacilityIDs []uuid.UUID `json:"facility_ids,omitempty"`
}

func (r CreateRoomTypeRequest) ToParams(hotelID uuid.UUID) commands.CreateRoomTypeParams {
	return commands.CreateRoomTypeParams{
		HotelID:     hotelID,
		Title:       r.Title,
		Quantity:    r.Quantity,
		PriceCents:  r.PriceCents,
		FacilityIDs: r.FacilityIDs,
	}
}

type CreateFacilityRequest struct {
	Title string `json:"title" binding:"required"`
}
