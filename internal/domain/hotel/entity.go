package hotel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("hotel title cannot be empty")
	ErrEmptyLocation = errors.New("hotel location cannot be empty")
)

// Hotel is catalog data. The availability core treats it as a scope for
// room-type lookups, nothing more.
type Hotel struct {
	id       uuid.UUID
	title    string
	location string
}

func NewHotel(title, location string) (*Hotel, error) {
	title = strings.TrimSpace(title)
	location = strings.TrimSpace(location)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	return &Hotel{
		id:       uuid.New(),
		title:    title,
		location: location,
	}, nil
}

func ReconstructHotel(id uuid.UUID, title, location string) *Hotel {
	return &Hotel{id: id, title: title, location: location}
}

func (h *Hotel) ID() uuid.UUID    { return h.id }
func (h *Hotel) Title() string    { return h.title }
func (h *Hotel) Location() string { return h.location }
