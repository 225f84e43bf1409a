package commands

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side ports. The booking repository is the single insert path into
// the bookings table; every method that participates in admission takes the
// transaction explicitly so the lock, the count and the insert share one
// boundary.

type BookingRepository interface {
	LockRoomType(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.RoomType, error)
	CountOverlapping(ctx context.Context, tx db.DBTX, roomTypeID uuid.UUID, period booking.StayPeriod) (int, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type CatalogRepository interface {
	CreateHotel(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error)
	CreateRoomType(ctx context.Context, rt *room.RoomType) (uuid.UUID, error)
	CreateFacility(ctx context.Context, title string) (uuid.UUID, error)
	AttachFacility(ctx context.Context, roomTypeID, facilityID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}

// Read-after-write lookups reuse the query-side stores.

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type UserReader interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserCredentialView, error)
}
