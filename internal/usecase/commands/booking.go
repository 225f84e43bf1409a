package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod       = errs.New("invalid stay period")
	ErrStayInPast              = errs.New("stay period starts in the past")
	ErrRoomTypeNotFound        = errs.New("room type not found")
	ErrNoRoomsAvailable        = errs.New("no rooms available for the requested period")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrStorageUnavailable      = errs.New("storage unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	RoomTypeID uuid.UUID
	UserID     uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	// PriceCents, when set, is the caller's price snapshot and is stored
	// as-is. When nil the room type's current per-night price is
	// snapshotted at admission time.
	PriceCents *int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, bookingID, ownerID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	bookings BookingRepository
	reads    BookingReader
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookings BookingRepository, reads BookingReader, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		bookings: bookings,
		reads:    reads,
		clock:    clk,
	}
}

// CreateBooking admits a booking request: it validates the stay period,
// locks the room type row, counts bookings overlapping the stay and inserts
// only if at least one unit remains. Lock, count and insert share one
// transaction, so two admissions racing for the last unit serialize and
// exactly one wins. A rejection leaves the store untouched.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	period, err := booking.NewStayPeriod(params.DateFrom, params.DateTo)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayPeriod)
	}
	if today := truncateToDay(c.clock.Now()); period.From().Before(today) {
		return nil, ErrStayInPast
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		roomType, err := c.bookings.LockRoomType(ctx, tx, params.RoomTypeID)
		if err != nil {
			return err
		}

		overlapping, err := c.bookings.CountOverlapping(ctx, tx, roomType.ID(), period)
		if err != nil {
			return err
		}

		remaining := booking.ComputeRemaining(roomType.Quantity(), overlapping)
		if remaining < 0 {
			// quantity was exceeded at some point; reject and surface
			slog.Error("booking capacity invariant violated",
				"room_type_id", roomType.ID().String(),
				"quantity", roomType.Quantity(),
				"overlapping", overlapping)
		}
		if remaining <= 0 {
			return ErrNoRoomsAvailable
		}

		priceCents := roomType.PriceCents() * int64(period.Nights())
		if params.PriceCents != nil {
			priceCents = *params.PriceCents
		}

		entity, err := booking.NewBooking(roomType.ID(), params.UserID, period, priceCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		bookingID, err = c.bookings.Create(ctx, tx, entity)
		return err
	})
	if err != nil {
		return nil, c.mapStoreError(err)
	}

	// Read-after-write: return the persisted view including joins
	view, err := c.reads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, c.mapStoreError(err)
	}
	return view, nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID, ownerID uuid.UUID) error {
	if err := c.bookings.Delete(ctx, bookingID, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return c.mapStoreError(err)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// mapStoreError keeps the four admission outcomes distinct: rejection and
// validation errors pass through, infrastructure failures split into
// unavailable (retryable by the caller) and plain DB failure.
func (c *bookingCommandsImpl) mapStoreError(err error) error {
	switch {
	case errors.Is(err, ErrNoRoomsAvailable),
		errors.Is(err, ErrInvalidStayPeriod),
		errors.Is(err, ErrDomainValidation),
		errors.Is(err, ErrBookingNotFound):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrRoomTypeNotFound)
	case infra.IsKind(err, infra.KindUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return errs.Mark(err, ErrStorageUnavailable)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
