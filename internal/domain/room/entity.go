package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("room type title cannot be empty")
	ErrNegativeQuantity = errors.New("room type quantity cannot be negative")
	ErrNegativePrice    = errors.New("room type price cannot be negative")
)

// RoomType is a class of interchangeable rooms within a hotel. Quantity is
// the fixed number of physical units; it changes only through catalog
// administration, never through booking.
type RoomType struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	title      string
	quantity   int
	priceCents int64
}

func NewRoomType(hotelID uuid.UUID, title string, quantity int, priceCents int64) (*RoomType, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &RoomType{
		id:         uuid.New(),
		hotelID:    hotelID,
		title:      title,
		quantity:   quantity,
		priceCents: priceCents,
	}, nil
}

func ReconstructRoomType(id, hotelID uuid.UUID, title string, quantity int, priceCents int64) *RoomType {
	return &RoomType{
		id:         id,
		hotelID:    hotelID,
		title:      title,
		quantity:   quantity,
		priceCents: priceCents,
	}
}

func (r *RoomType) ID() uuid.UUID      { return r.id }
func (r *RoomType) HotelID() uuid.UUID { return r.hotelID }
func (r *RoomType) Title() string      { return r.title }
func (r *RoomType) Quantity() int      { return r.quantity }
func (r *RoomType) PriceCents() int64  { return r.priceCents }

// Facility is an amenity attached to a room type (m2m in the catalog).
type Facility struct {
	ID    uuid.UUID
	Title string
}
