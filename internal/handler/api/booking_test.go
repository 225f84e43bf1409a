//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/common/testutil"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// stand-in for the auth middleware
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.actorID)
			c.Set("user_role", user.RoleUser)
			h(c)
		}
	}

	s.router.POST("/bookings", authed(s.handler.CreateBooking))
	s.router.GET("/bookings", authed(s.handler.ListBookings))
	s.router.GET("/bookings/:id", authed(s.handler.GetBooking))
	s.router.DELETE("/bookings/:id", authed(s.handler.DeleteBooking))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestMap()
	returnView := b.BuildReadModel()

	s.Run("success: returns 201 Created with the persisted booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.PriceCents, response.PriceCents)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_type_id", mutate: testutil.Field("room_type_id", nil)},
			{name: "missing date_from", mutate: testutil.Field("date_from", nil)},
			{name: "date_from not a date", mutate: testutil.Field("date_from", "tomorrow")},
			{name: "date_to wrong layout", mutate: testutil.Field("date_to", "01-09-2026")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := b.BuildRequestMap()
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: usecase outcomes map to distinct status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "inverted period", err: commands.ErrInvalidStayPeriod, expectCode: http.StatusUnprocessableEntity},
			{name: "stay in the past", err: commands.ErrStayInPast, expectCode: http.StatusUnprocessableEntity},
			{name: "unknown room type", err: commands.ErrRoomTypeNotFound, expectCode: http.StatusNotFound},
			{name: "no rooms left", err: commands.ErrNoRoomsAvailable, expectCode: http.StatusConflict},
			{name: "storage unavailable", err: commands.ErrStorageUnavailable, expectCode: http.StatusServiceUnavailable},
			{name: "db failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildReadModel()

	s.Run("success: returns 200 OK for own booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, false, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 when booking does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, false, id).
			Return(nil, queries.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 403 when booking belongs to someone else", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, false, id).
			Return(nil, queries.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	b := builder.NewBookingBuilder().WithUser(uuid.New())
	views := []*queries.BookingView{b.BuildReadModel(), b.BuildReadModel()}

	s.Run("success: returns 200 OK with all own bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, s.actorID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when booking does not exist or is not owned", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, s.actorID).
			Return(commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
