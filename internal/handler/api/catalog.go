package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler owns the admin-only write side of the hotel catalog.
type CatalogHandler struct {
	catalog commands.CatalogCommands
}

func NewCatalogHandler(catalog commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary Create hotel
// @Description Create a new hotel (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels [post]
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.catalog.CreateHotel(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Create room type
// @Description Create a room type under a hotel (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{id}/rooms [post]
func (h *CatalogHandler) CreateRoomType(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID format", nil)
		return
	}

	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.catalog.CreateRoomType(c.Request.Context(), req.ToParams(hotelID))
	if err != nil {
		if errors.Is(err, commands.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		h.abortCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Create facility
// @Description Create a room facility (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFacilityRequest true "Facility request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /facilities [post]
func (h *CatalogHandler) CreateFacility(c *gin.Context) {
	var req reqdto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.catalog.CreateFacility(c.Request.Context(), req.Title)
	if err != nil {
		h.abortCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *CatalogHandler) abortCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidCatalog):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid catalog data", nil)
	case errors.Is(err, commands.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
