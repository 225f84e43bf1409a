package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type HotelView struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
}

type FacilityView struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type RoomTypeView struct {
	ID         uuid.UUID      `json:"id"`
	HotelID    uuid.UUID      `json:"hotel_id"`
	Title      string         `json:"title"`
	Quantity   int            `json:"quantity"`
	PriceCents int64          `json:"price_cents"`
	Facilities []FacilityView `json:"facilities"`
}

// AvailableRoomTypeView pairs a room type with how many units stay free
// over the queried period.
type AvailableRoomTypeView struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	Remaining  int       `json:"remaining"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	RoomTypeID    uuid.UUID `json:"room_type_id"`
	RoomTypeTitle string    `json:"room_type_title"`
	HotelID       uuid.UUID `json:"hotel_id"`
	HotelTitle    string    `json:"hotel_title"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	DateFrom      time.Time `json:"date_from"`
	DateTo        time.Time `json:"date_to"`
	PriceCents    int64     `json:"price_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// UserCredentialView carries the password hash for login verification only;
// it never leaves the auth usecase.
type UserCredentialView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

type Page struct {
	Limit  int
	Offset int
}

func (p Page) Normalize() Page {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
