//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"railbook/internal/handler/api"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/usecase/commands"
	"railbook/internal/usecase/queries"
	commonhttp "railbook/tests/common/httptest"
	commandsmock "railbook/tests/mock/commands"
	queriesmock "railbook/tests/mock/queries"

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
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	auth := mockAuth(s.userID)
	s.router.POST("/bookings", auth, handler.CreateBooking)
	s.router.GET("/bookings", auth, handler.GetUserBookings)
	s.router.POST("/bookings/:pnr/cancel", auth, handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func bookingBody(token uuid.UUID) map[string]any {
	return map[string]any{
		"quote_token": token.String(),
		"passengers": []map[string]any{
			{"name": "Asha Verma", "age": 34, "gender": "female", "berth_pref": "lower"},
			{"name": "Ravi Kumar", "age": 62, "gender": "male"},
		},
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	token := uuid.New()

	s.Run("books against a quote token", func() {
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.userID, token, gomock.Len(2)).
			Return(&commands.BookResult{PNR: "4512873906", Status: "CONFIRMED", FarePaise: 84000}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", bookingBody(token), "token")
		s.Equal(http.StatusCreated, w.Code)

		var res resdto.BookResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Equal("4512873906", res.PNR)
		s.Equal("CONFIRMED", res.Status)
	})

	s.Run("requires authentication", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", bookingBody(token), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects an invalid berth preference", func() {
		body := bookingBody(token)
		body["passengers"] = []map[string]any{
			{"name": "Asha Verma", "age": 34, "gender": "female", "berth_pref": "roof"},
		}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("maps redemption errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"expired token", commands.ErrQuoteExpired, http.StatusGone, "Quote expired"},
			{"consumed token", commands.ErrQuoteAlreadyConsumed, http.StatusConflict, "already used"},
			{"foreign token", commands.ErrQuoteOwnerMismatch, http.StatusForbidden, "another user"},
			{"party size mismatch", commands.ErrPassengerCountMismatch, http.StatusBadRequest, "does not match"},
			{"sold out", commands.ErrInventoryExhausted, http.StatusConflict, "fully waitlisted"},
			{"contention timeout", commands.ErrBookingTimeout, http.StatusServiceUnavailable, "timed out"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Book(gomock.Any(), s.userID, token, gomock.Any()).
					Return(nil, tc.err)

				w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", bookingBody(token), "token")
				commonhttp.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("cancels and reports promotions", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.userID, "4512873906").
			Return(&commands.CancelResult{PNR: "4512873906", PromotedPNRs: []string{"3000000001"}}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/4512873906/cancel", nil, "token")
		s.Equal(http.StatusOK, w.Code)

		var res resdto.CancelResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Equal("CANCELLED", res.Status)
		s.Equal([]string{"3000000001"}, res.PromotedPNRs)
	})

	s.Run("maps cancellation errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"unknown pnr", commands.ErrReservationNotFound, http.StatusNotFound},
			{"foreign reservation", commands.ErrNotReservationOwner, http.StatusForbidden},
			{"already cancelled", commands.ErrAlreadyCancelled, http.StatusConflict},
			{"contention timeout", commands.ErrBookingTimeout, http.StatusServiceUnavailable},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Cancel(gomock.Any(), s.userID, "4512873906").
					Return(nil, tc.err)

				w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/4512873906/cancel", nil, "token")
				s.Equal(tc.wantStatus, w.Code)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("lists the caller's bookings", func() {
		items := []*queries.BookingListItem{
			{PNR: "4512873906", TrainNumber: "12556", Status: "CONFIRMED", FarePaise: 42000,
				PassengerCount: 2, CreatedAt: time.Now().UTC()},
		}
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, 50).
			Return(items, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")
		s.Equal(http.StatusOK, w.Code)

		var res []resdto.BookingListResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Require().Len(res, 1)
		s.Equal("4512873906", res[0].PNR)
		s.Equal(int32(2), res[0].PassengerCount)
	})

	s.Run("passes an explicit limit through", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, 5).
			Return(nil, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=5", nil, "token")
		s.Equal(http.StatusOK, w.Code)
	})
}
