package api

import (
	"errors"
	"net/http"
	"time"

	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Search available room types
// @Description List room types with at least one unit free over the period, optionally scoped to a hotel
// @Tags availability
// @Produce json
// @Param date_from query string true "Check-in date (YYYY-MM-DD)"
// @Param date_to query string true "Check-out date (YYYY-MM-DD)"
// @Param hotel_id query string false "Hotel ID"
// @Success 200 {array} resdto.AvailableRoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var hotelID *uuid.UUID
	if raw := c.Query("hotel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hotel ID format",
			})
			return
		}
		hotelID = &id
	}

	h.search(c, hotelID)
}

// @Summary Search available room types in a hotel
// @Description List room types of the hotel with at least one unit free over the period
// @Tags availability
// @Produce json
// @Param id path string true "Hotel ID"
// @Param date_from query string true "Check-in date (YYYY-MM-DD)"
// @Param date_to query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AvailableRoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{id}/availability [get]
func (h *AvailabilityHandler) SearchByHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	h.search(c, &id)
}

func (h *AvailabilityHandler) search(c *gin.Context, hotelID *uuid.UUID) {
	dateFrom, err := time.Parse(dateLayout, c.Query("date_from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date_from must be formatted as YYYY-MM-DD",
		})
		return
	}
	dateTo, err := time.Parse(dateLayout, c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date_to must be formatted as YYYY-MM-DD",
		})
		return
	}

	views, err := h.availability.Search(c.Request.Context(), hotelID, dateFrom, dateTo)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchPeriod):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "date_to must be after date_from",
			})
		case errors.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableRoomTypeViews(views))
}
