//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomType(t *testing.T, title string, quantity int) *room.RoomType {
	t.Helper()
	rt, err := room.NewRoomType(uuid.New(), title, quantity, 10000)
	require.NoError(t, err)
	return rt
}

func TestComputeRemaining(t *testing.T) {
	assert.Equal(t, 2, booking.ComputeRemaining(5, 3))
	assert.Equal(t, 0, booking.ComputeRemaining(3, 3))
	// no clamping: negative remaining signals an invariant violation
	assert.Equal(t, -1, booking.ComputeRemaining(2, 3))
}

func TestIsAvailable(t *testing.T) {
	assert.True(t, booking.IsAvailable(1, 0))
	assert.False(t, booking.IsAvailable(1, 1))
	assert.False(t, booking.IsAvailable(0, 0))
	assert.False(t, booking.IsAvailable(2, 3))
}

func TestFindAvailableRoomTypes(t *testing.T) {
	standard := roomType(t, "Standard", 2)
	deluxe := roomType(t, "Deluxe", 1)
	suite := roomType(t, "Suite", 3)

	t.Run("filters out fully booked and preserves order", func(t *testing.T) {
		counts := map[uuid.UUID]int{
			standard.ID(): 2, // full
			suite.ID():    1, // two left
			// deluxe absent: zero bookings
		}

		got := booking.FindAvailableRoomTypes([]*room.RoomType{standard, deluxe, suite}, counts)

		require.Len(t, got, 2)
		assert.Equal(t, deluxe.ID(), got[0].RoomType.ID())
		assert.Equal(t, 1, got[0].Remaining)
		assert.Equal(t, suite.ID(), got[1].RoomType.ID())
		assert.Equal(t, 2, got[1].Remaining)
	})

	t.Run("zero quantity never listed", func(t *testing.T) {
		closed := roomType(t, "Closed wing", 0)
		got := booking.FindAvailableRoomTypes([]*room.RoomType{closed}, nil)
		assert.Empty(t, got)
	})

	t.Run("overbooked room type excluded, not clamped in", func(t *testing.T) {
		got := booking.FindAvailableRoomTypes([]*room.RoomType{deluxe}, map[uuid.UUID]int{deluxe.ID(): 2})
		assert.Empty(t, got)
	})

	t.Run("empty catalog", func(t *testing.T) {
		got := booking.FindAvailableRoomTypes(nil, nil)
		assert.Empty(t, got)
	})
}

// Scenario from the booking rules: quantity=2, two bookings overlapping the
// queried stay leave nothing free; a disjoint stay sees full capacity.
func TestAvailabilityScenario(t *testing.T) {
	rt := roomType(t, "Twin", 2)

	first := period(t, "2025-02-01", "2025-02-05")
	second := period(t, "2025-02-03", "2025-02-07")

	countFor := func(q booking.StayPeriod) int {
		n := 0
		for _, p := range []booking.StayPeriod{first, second} {
			if p.Overlaps(q) {
				n++
			}
		}
		return n
	}

	busy := period(t, "2025-02-04", "2025-02-06")
	require.Equal(t, 2, countFor(busy))
	assert.Empty(t, booking.FindAvailableRoomTypes([]*room.RoomType{rt}, map[uuid.UUID]int{rt.ID(): countFor(busy)}))

	idle := period(t, "2025-02-10", "2025-02-12")
	require.Equal(t, 0, countFor(idle))
	got := booking.FindAvailableRoomTypes([]*room.RoomType{rt}, map[uuid.UUID]int{rt.ID(): countFor(idle)})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Remaining)
}
