//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore backs the admitter tests with an in-memory table. The uow mutex
// stands in for the row lock: transactions run one at a time, exactly the
// serialization the FOR UPDATE lock provides per room type.
type memStore struct {
	mu        sync.Mutex
	roomTypes map[uuid.UUID]*room.RoomType
	bookings  []*booking.Booking
}

func newMemStore() *memStore {
	return &memStore{roomTypes: make(map[uuid.UUID]*room.RoomType)}
}

func (s *memStore) addRoomType(rt *room.RoomType) {
	s.roomTypes[rt.ID()] = rt
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) LockRoomType(_ context.Context, _ db.DBTX, id uuid.UUID) (*room.RoomType, error) {
	rt, ok := s.roomTypes[id]
	if !ok {
		return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return rt, nil
}

func (s *memStore) CountOverlapping(_ context.Context, _ db.DBTX, roomTypeID uuid.UUID, period booking.StayPeriod) (int, error) {
	count := 0
	for _, b := range s.bookings {
		if b.RoomTypeID() == roomTypeID && b.Period().Overlaps(period) {
			count++
		}
	}
	return count, nil
}

func (s *memStore) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	s.bookings = append(s.bookings, b)
	return b.ID(), nil
}

func (s *memStore) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID() == id && b.UserID() == ownerID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (s *memStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID() == id {
			return &queries.BookingView{
				ID:         b.ID(),
				RoomTypeID: b.RoomTypeID(),
				UserID:     b.UserID(),
				DateFrom:   b.Period().From(),
				DateTo:     b.Period().To(),
				PriceCents: b.PriceCents(),
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newAdmitter(store *memStore, now time.Time) commands.BookingCommands {
	return commands.NewBookingCommands(store, store, store, clock.NewFixedClock(now))
}

func TestCreateBooking(t *testing.T) {
	now := day(2026, 1, 1)
	userID := uuid.New()

	newRoomType := func(t *testing.T, quantity int, priceCents int64) *room.RoomType {
		t.Helper()
		rt, err := room.NewRoomType(uuid.New(), "Standard Double", quantity, priceCents)
		require.NoError(t, err)
		return rt
	}

	t.Run("admits a booking and snapshots price per night", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 2, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		view, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 1),
			DateTo:     day(2026, 2, 5),
		})
		require.NoError(t, err)
		assert.Equal(t, rt.ID(), view.RoomTypeID)
		assert.Equal(t, int64(40000), view.PriceCents) // 4 nights x 10000
		assert.Len(t, store.bookings, 1)
	})

	t.Run("stores the caller's price snapshot verbatim when given", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 2, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		price := int64(12345)
		view, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 1),
			DateTo:     day(2026, 2, 5),
			PriceCents: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, price, view.PriceCents)
	})

	t.Run("rejects inverted or empty stay periods without touching the store", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 2, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		for _, tc := range []struct {
			name     string
			from, to time.Time
		}{
			{name: "zero length", from: day(2026, 2, 1), to: day(2026, 2, 1)},
			{name: "inverted", from: day(2026, 2, 5), to: day(2026, 2, 1)},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
					RoomTypeID: rt.ID(),
					UserID:     userID,
					DateFrom:   tc.from,
					DateTo:     tc.to,
				})
				assert.ErrorIs(t, err, commands.ErrInvalidStayPeriod)
				assert.Empty(t, store.bookings)
			})
		}
	})

	t.Run("rejects stays starting before today", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 2, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		_, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2025, 12, 31),
			DateTo:     day(2026, 1, 2),
		})
		assert.ErrorIs(t, err, commands.ErrStayInPast)
		assert.Empty(t, store.bookings)
	})

	t.Run("unknown room type maps to its own error", func(t *testing.T) {
		store := newMemStore()
		admitter := newAdmitter(store, now)

		_, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
			RoomTypeID: uuid.New(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 1),
			DateTo:     day(2026, 2, 5),
		})
		assert.ErrorIs(t, err, commands.ErrRoomTypeNotFound)
	})

	t.Run("rejects once every unit is taken and leaves the store unchanged", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 2, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		stay := commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 1),
			DateTo:     day(2026, 2, 5),
		}
		for range 2 {
			_, err := admitter.CreateBooking(context.Background(), stay)
			require.NoError(t, err)
		}

		_, err := admitter.CreateBooking(context.Background(), stay)
		assert.ErrorIs(t, err, commands.ErrNoRoomsAvailable)
		assert.Len(t, store.bookings, 2)
	})

	t.Run("back to back stays share a unit", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 1, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		_, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 1),
			DateTo:     day(2026, 2, 5),
		})
		require.NoError(t, err)

		// checkout day equals next check-in day: no overlap
		_, err = admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 5),
			DateTo:     day(2026, 2, 9),
		})
		require.NoError(t, err)
		assert.Len(t, store.bookings, 2)
	})

	t.Run("a freed unit becomes admittable again", func(t *testing.T) {
		store := newMemStore()
		rt := newRoomType(t, 1, 10000)
		store.addRoomType(rt)
		admitter := newAdmitter(store, now)

		stay := commands.CreateBookingParams{
			RoomTypeID: rt.ID(),
			UserID:     userID,
			DateFrom:   day(2026, 2, 1),
			DateTo:     day(2026, 2, 5),
		}
		view, err := admitter.CreateBooking(context.Background(), stay)
		require.NoError(t, err)

		_, err = admitter.CreateBooking(context.Background(), stay)
		assert.ErrorIs(t, err, commands.ErrNoRoomsAvailable)

		require.NoError(t, admitter.DeleteBooking(context.Background(), view.ID, userID))

		_, err = admitter.CreateBooking(context.Background(), stay)
		assert.NoError(t, err)
	})
}

// Two concurrent admissions racing for the last unit: exactly one must win.
func TestCreateBookingConcurrency(t *testing.T) {
	now := day(2026, 1, 1)
	store := newMemStore()
	rt, err := room.NewRoomType(uuid.New(), "Single", 1, 8000)
	require.NoError(t, err)
	store.addRoomType(rt)
	admitter := newAdmitter(store, now)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
				RoomTypeID: rt.ID(),
				UserID:     uuid.New(),
				DateFrom:   day(2026, 3, 1),
				DateTo:     day(2026, 3, 3),
			})
		}()
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
		} else {
			assert.ErrorIs(t, err, commands.ErrNoRoomsAvailable)
		}
	}
	assert.Equal(t, 1, admitted)
	assert.Len(t, store.bookings, 1)
}

func TestDeleteBooking(t *testing.T) {
	now := day(2026, 1, 1)
	store := newMemStore()
	rt, err := room.NewRoomType(uuid.New(), "Suite", 3, 25000)
	require.NoError(t, err)
	store.addRoomType(rt)
	admitter := newAdmitter(store, now)

	owner := uuid.New()
	view, err := admitter.CreateBooking(context.Background(), commands.CreateBookingParams{
		RoomTypeID: rt.ID(),
		UserID:     owner,
		DateFrom:   day(2026, 2, 1),
		DateTo:     day(2026, 2, 3),
	})
	require.NoError(t, err)

	t.Run("someone else's delete reads as not found", func(t *testing.T) {
		err := admitter.DeleteBooking(context.Background(), view.ID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("the owner can delete", func(t *testing.T) {
		err := admitter.DeleteBooking(context.Background(), view.ID, owner)
		assert.NoError(t, err)
		assert.Empty(t, store.bookings)
	})
}
