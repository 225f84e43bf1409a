package booking

import (
	"hotel-booking-api/internal/domain/room"

	"github.com/google/uuid"
)

// Remaining inventory of a room type over some queried stay period.
type RoomTypeAvailability struct {
	RoomType  *room.RoomType
	Remaining int
}

// ComputeRemaining returns quantity minus the number of bookings that
// overlap the queried period. No clamping: a negative result means the
// capacity invariant was violated and should be surfaced, not hidden.
func ComputeRemaining(quantity, overlappingBookings int) int {
	return quantity - overlappingBookings
}

func IsAvailable(quantity, overlappingBookings int) bool {
	return ComputeRemaining(quantity, overlappingBookings) > 0
}

// FindAvailableRoomTypes filters room types down to those with at least one
// free unit. countsByRoomType holds overlapping-booking counts for the
// queried period; an absent key means zero bookings. Input order is
// preserved so results are deterministic; callers wanting a price sort do
// it afterward.
func FindAvailableRoomTypes(roomTypes []*room.RoomType, countsByRoomType map[uuid.UUID]int) []RoomTypeAvailability {
	available := make([]RoomTypeAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		remaining := ComputeRemaining(rt.Quantity(), countsByRoomType[rt.ID()])
		if remaining > 0 {
			available = append(available, RoomTypeAvailability{
				RoomType:  rt,
				Remaining: remaining,
			})
		}
	}
	return available
}
