//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"railbook/internal/handler/api"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/infra"
	"railbook/internal/usecase/queries"
	commonhttp "railbook/tests/common/httptest"
	queriesmock "railbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PNRHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPNRQueries
}

func (s *PNRHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPNRQueries(s.mockCtrl)

	handler := api.NewPNRHandler(s.mockQueries)
	s.router.GET("/pnr/:pnr", mockAuth(uuid.New()), handler.GetStatus)
}

func (s *PNRHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPNRHandlerSuite(t *testing.T) {
	suite.Run(t, new(PNRHandlerTestSuite))
}

func (s *PNRHandlerTestSuite) TestGetStatus() {
	s.Run("returns the ticket-style status", func() {
		view := &queries.PNRStatusView{
			PNR:         "4512873906",
			TrainNumber: "12556",
			TrainName:   "GORAKHDHAM EXPRESS",
			ServiceDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Class:       "SL",
			Quota:       "GN",
			FromStation: "NDLS",
			ToStation:   "GKP",
			Status:      "RAC",
			StatusLabel: "RAC 2",
			FarePaise:   42000,
			Passengers: []queries.PassengerView{
				{Name: "Asha Verma", Age: 34, Gender: "female", BerthPref: "lower"},
			},
			BookedAt: time.Now().UTC(),
		}
		s.mockQueries.EXPECT().
			Status(gomock.Any(), "4512873906").
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/pnr/4512873906", nil, "token")
		s.Equal(http.StatusOK, w.Code)

		var res resdto.PNRStatusResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Equal("RAC 2", res.StatusLabel)
		s.Require().Len(res.Passengers, 1)
		s.Equal("Asha Verma", res.Passengers[0].Name)
	})

	s.Run("rejects a malformed pnr without hitting the store", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/pnr/12345", nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid PNR format")
	})

	s.Run("unknown pnr", func() {
		s.mockQueries.EXPECT().
			Status(gomock.Any(), "9999999999").
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "pnr not found", nil))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/pnr/9999999999", nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "PNR not found")
	})
}
