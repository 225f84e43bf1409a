package queries

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSearchPeriod = errs.New("invalid search period")
	ErrHotelNotFound       = errs.New("hotel not found")
)

type RoomCatalogReadStore interface {
	ListForAvailability(ctx context.Context, hotelID *uuid.UUID) ([]*room.RoomType, error)
}

type OverlapCountReadStore interface {
	CountOverlappingByRoomType(ctx context.Context, hotelID *uuid.UUID, period booking.StayPeriod) (map[uuid.UUID]int, error)
}

type HotelExistenceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
}

type AvailabilityQueries interface {
	// Search lists room types with at least one free unit for the period,
	// across all hotels or scoped to one.
	Search(ctx context.Context, hotelID *uuid.UUID, dateFrom, dateTo time.Time) ([]*AvailableRoomTypeView, error)
}

type availabilityQueriesImpl struct {
	rooms    RoomCatalogReadStore
	overlaps OverlapCountReadStore
	hotels   HotelExistenceReadStore
}

func NewAvailabilityQueries(rooms RoomCatalogReadStore, overlaps OverlapCountReadStore, hotels HotelExistenceReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:    rooms,
		overlaps: overlaps,
		hotels:   hotels,
	}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, hotelID *uuid.UUID, dateFrom, dateTo time.Time) ([]*AvailableRoomTypeView, error) {
	period, err := booking.NewStayPeriod(dateFrom, dateTo)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchPeriod)
	}

	if hotelID != nil {
		if _, err := q.hotels.FindByID(ctx, *hotelID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrHotelNotFound
			}
			return nil, err
		}
	}

	roomTypes, err := q.rooms.ListForAvailability(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	counts, err := q.overlaps.CountOverlappingByRoomType(ctx, hotelID, period)
	if err != nil {
		return nil, err
	}

	available := booking.FindAvailableRoomTypes(roomTypes, counts)

	views := make([]*AvailableRoomTypeView, len(available))
	for i, a := range available {
		views[i] = &AvailableRoomTypeView{
			ID:         a.RoomType.ID(),
			HotelID:    a.RoomType.HotelID(),
			Title:      a.RoomType.Title(),
			PriceCents: a.RoomType.PriceCents(),
			Remaining:  a.Remaining,
		}
	}
	return views, nil
}
