package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotels queries.HotelQueries
}

func NewHotelHandler(hotels queries.HotelQueries) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

// @Summary List hotels
// @Description List hotels with optional title filter and pagination
// @Tags hotels
// @Produce json
// @Param title query string false "Filter by title substring"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	var titleFilter *string
	if title := c.Query("title"); title != "" {
		titleFilter = &title
	}

	page := queries.Page{
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}.Normalize()

	views, err := h.hotels.List(c.Request.Context(), titleFilter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Description Get hotel by ID
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	view, err := h.hotels.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
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

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary List room types of a hotel
// @Description List all room types belonging to a hotel, with facilities
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/rooms [get]
func (h *HotelHandler) ListRoomTypes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	views, err := h.hotels.ListRoomTypes(c.Request.Context(), id)
	if err != nil {
		switch {
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

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Get room type
// @Description Get room type by ID
// @Tags hotels
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *HotelHandler) GetRoomType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	view, err := h.hotels.GetRoomType(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary List facilities
// @Description List all known room facilities
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.FacilityResponse
// @Router /facilities [get]
func (h *HotelHandler) ListFacilities(c *gin.Context) {
	views, err := h.hotels.ListFacilities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFacilityViews(views))
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
