package queries

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type HotelReadStore interface {
	List(ctx context.Context, titleFilter *string, page Page) ([]*HotelView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
}

type RoomReadStore interface {
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListFacilities(ctx context.Context) ([]*FacilityView, error)
}

type HotelQueries interface {
	List(ctx context.Context, titleFilter *string, page Page) ([]*HotelView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeView, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListFacilities(ctx context.Context) ([]*FacilityView, error)
}

var ErrRoomTypeNotFound = errs.New("room type not found")

type hotelQueriesImpl struct {
	hotels HotelReadStore
	rooms  RoomReadStore
}

func NewHotelQueries(hotels HotelReadStore, rooms RoomReadStore) HotelQueries {
	return &hotelQueriesImpl{hotels: hotels, rooms: rooms}
}

func (q *hotelQueriesImpl) List(ctx context.Context, titleFilter *string, page Page) ([]*HotelView, error) {
	return q.hotels.List(ctx, titleFilter, page.Normalize())
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.hotels.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeView, error) {
	// hotel existence check keeps 404 distinct from an empty room list
	if _, err := q.hotels.FindByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return q.rooms.ListByHotel(ctx, hotelID)
}

func (q *hotelQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) ListFacilities(ctx context.Context) ([]*FacilityView, error) {
	return q.rooms.ListFacilities(ctx)
}
