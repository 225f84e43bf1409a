package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
}

type FacilityResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type RoomTypeResponse struct {
	ID         uuid.UUID          `json:"id"`
	HotelID    uuid.UUID          `json:"hotelId"`
	Title      string             `json:"title"`
	Quantity   int                `json:"quantity"`
	PriceCents int64              `json:"priceCents"`
	Facilities []FacilityResponse `json:"facilities"`
}

type AvailableRoomTypeResponse struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotelId"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"priceCents"`
	Remaining  int       `json:"remaining"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromHotelViews(vs []*queries.HotelView) []*HotelResponse {
	resp := make([]*HotelResponse, len(vs))
	for i, v := range vs {
		resp[i] = FromHotelView(v)
	}
	return resp
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	var resp RoomTypeResponse
	_ = copier.Copy(&resp, v)
	if resp.Facilities == nil {
		resp.Facilities = []FacilityResponse{}
	}
	return &resp
}

func FromRoomTypeViews(vs []*queries.RoomTypeView) []*RoomTypeResponse {
	resp := make([]*RoomTypeResponse, len(vs))
	for i, v := range vs {
		resp[i] = FromRoomTypeView(v)
	}
	return resp
}

func FromFacilityViews(vs []*queries.FacilityView) []*FacilityResponse {
	resp := make([]*FacilityResponse, len(vs))
	for i, v := range vs {
		var fr FacilityResponse
		_ = copier.Copy(&fr, v)
		resp[i] = &fr
	}
	return resp
}

func FromAvailableRoomTypeViews(vs []*queries.AvailableRoomTypeView) []*AvailableRoomTypeResponse {
	resp := make([]*AvailableRoomTypeResponse, len(vs))
	for i, v := range vs {
		var ar AvailableRoomTypeResponse
		_ = copier.Copy(&ar, v)
		resp[i] = &ar
	}
	return resp
}
