package commands

import (
	"context"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound  = errs.New("hotel not found")
	ErrInvalidCatalog = errs.New("invalid catalog input")
)

type CreateHotelParams struct {
	Title    string
	Location string
}

type CreateRoomTypeParams struct {
	HotelID     uuid.UUID
	Title       string
	Quantity    int
	PriceCents  int64
	FacilityIDs []uuid.UUID
}

// CatalogCommands is admin-only catalog management. Quantity set here is
// the capacity ceiling booking admission enforces.
type CatalogCommands interface {
	CreateHotel(ctx context.Context, params CreateHotelParams) (uuid.UUID, error)
	CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (uuid.UUID, error)
	CreateFacility(ctx context.Context, title string) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	catalog CatalogRepository
}

func NewCatalogCommands(catalog CatalogRepository) CatalogCommands {
	return &catalogCommandsImpl{catalog: catalog}
}

func (c *catalogCommandsImpl) CreateHotel(ctx context.Context, params CreateHotelParams) (uuid.UUID, error) {
	entity, err := hotel.NewHotel(params.Title, params.Location)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalog)
	}

	id, err := c.catalog.CreateHotel(ctx, entity)
	if err != nil {
		return uuid.Nil, c.mapStoreError(err)
	}
	return id, nil
}

func (c *catalogCommandsImpl) CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (uuid.UUID, error) {
	entity, err := room.NewRoomType(params.HotelID, params.Title, params.Quantity, params.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalog)
	}

	id, err := c.catalog.CreateRoomType(ctx, entity)
	if err != nil {
		// a broken hotel reference classifies as CONFLICT
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrHotelNotFound
		}
		return uuid.Nil, c.mapStoreError(err)
	}

	for _, facilityID := range params.FacilityIDs {
		if err := c.catalog.AttachFacility(ctx, id, facilityID); err != nil {
			return uuid.Nil, c.mapStoreError(err)
		}
	}
	return id, nil
}

func (c *catalogCommandsImpl) CreateFacility(ctx context.Context, title string) (uuid.UUID, error) {
	if title == "" {
		return uuid.Nil, ErrInvalidCatalog
	}
	id, err := c.catalog.CreateFacility(ctx, title)
	if err != nil {
		return uuid.Nil, c.mapStoreError(err)
	}
	return id, nil
}

func (c *catalogCommandsImpl) mapStoreError(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
