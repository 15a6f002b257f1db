//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"railbook/internal/domain/train"
	"railbook/internal/handler/api"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/infra"
	"railbook/internal/usecase/queries"
	commonhttp "railbook/tests/common/httptest"
	queriesmock "railbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrainHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockTrains       *queriesmock.MockTrainQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *TrainHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTrains = queriesmock.NewMockTrainQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	handler := api.NewTrainHandler(s.mockTrains, s.mockAvailability)
	s.router.GET("/trains", handler.ListTrains)
	s.router.GET("/trains/:number", handler.GetTrain)
	s.router.GET("/stations", handler.SearchStations)
	s.router.GET("/inventory/:train/:date/:class/:quota", handler.GetAvailability)
}

func (s *TrainHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrainHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrainHandlerTestSuite))
}

func listItem(number, name string) *queries.TrainListItem {
	return &queries.TrainListItem{
		Number:      number,
		Name:        name,
		Origin:      "NDLS",
		Terminus:    "GKP",
		RunningDays: []string{"Daily"},
		Classes:     []string{"SL", "3A"},
	}
}

func (s *TrainHandlerTestSuite) TestGetTrain() {
	s.Run("returns the full schedule", func() {
		dep := int32(0)
		view := &queries.TrainView{
			Number:      "12556",
			Name:        "GORAKHDHAM EXPRESS",
			RunningDays: []string{"Daily"},
			Classes:     []string{"SL", "3A"},
			Stops: []queries.StopView{
				{StationCode: "NDLS", StationName: "New Delhi", DepartureMin: &dep, DistanceKm: 0, Day: 1},
			},
		}
		s.mockTrains.EXPECT().
			Get(gomock.Any(), "12556").
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains/12556", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var res resdto.TrainResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Equal("GORAKHDHAM EXPRESS", res.Name)
		s.Require().Len(res.Stops, 1)
		s.Equal("NDLS", res.Stops[0].StationCode)
	})

	s.Run("unknown number", func() {
		s.mockTrains.EXPECT().
			Get(gomock.Any(), "99999").
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "train not found", nil))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains/99999", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Train not found")
	})
}

func (s *TrainHandlerTestSuite) TestListTrains() {
	s.Run("lists every train when no filter is given", func() {
		s.mockTrains.EXPECT().
			List(gomock.Any()).
			Return([]*queries.TrainListItem{listItem("12556", "GORAKHDHAM EXPRESS"), listItem("12910", "GARIB RATH")}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var res []*resdto.TrainListResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Len(res, 2)
	})

	s.Run("searches by segment, uppercasing the codes", func() {
		s.mockTrains.EXPECT().
			Search(gomock.Any(), "NDLS", "GKP", time.Time{}).
			Return([]*queries.TrainListItem{listItem("12556", "GORAKHDHAM EXPRESS")}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains?from=ndls&to=gkp", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var res []*resdto.TrainListResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Require().Len(res, 1)
		s.Equal("12556", res[0].Number)
	})

	s.Run("passes the travel date through to the search", func() {
		date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		s.mockTrains.EXPECT().
			Search(gomock.Any(), "NDLS", "GKP", date).
			Return([]*queries.TrainListItem{}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains?from=NDLS&to=GKP&date=2026-09-10", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects a bad date", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains?from=NDLS&to=GKP&date=10-09-2026", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	})

	s.Run("rejects a lone from", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/trains?from=NDLS", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Provide both from and to, or neither")
	})
}

func (s *TrainHandlerTestSuite) TestSearchStations() {
	s.Run("matches by fragment with the default limit", func() {
		s.mockTrains.EXPECT().
			SearchStations(gomock.Any(), "kanpur", 20).
			Return([]*queries.StationView{{Code: "CNB", Name: "Kanpur Central", State: "Uttar Pradesh"}}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/stations?q=kanpur", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var res []*resdto.StationResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Require().Len(res, 1)
		s.Equal("CNB", res[0].Code)
	})

	s.Run("honours an explicit limit", func() {
		s.mockTrains.EXPECT().
			SearchStations(gomock.Any(), "new", 5).
			Return([]*queries.StationView{}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/stations?q=new&limit=5", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("requires q", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/stations", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Query parameter q is required")
	})
}

func (s *TrainHandlerTestSuite) TestGetAvailability() {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	s.Run("returns the pool snapshot", func() {
		view := &queries.AvailabilityView{
			TrainNumber:        "12556",
			ServiceDate:        date,
			Class:              "SL",
			Quota:              "GN",
			Status:             "AVAILABLE",
			ConfirmedAvailable: 12,
			RACAvailable:       7,
			WaitlistAvailable:  25,
		}
		s.mockAvailability.EXPECT().
			Availability(gomock.Any(), "12556", date, train.ClassSleeper, train.QuotaGeneral).
			Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/12556/2026-09-10/sl/gn", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var res resdto.AvailabilityResponse
		commonhttp.DecodeResponseBody(s.T(), w, &res)
		s.Equal("AVAILABLE", res.Status)
		s.Equal(int32(12), res.ConfirmedAvailable)
	})

	s.Run("rejects a bad date before touching the store", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/12556/tomorrow/SL/GN", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	})

	s.Run("rejects unknown class and quota codes", func() {
		for _, qerr := range []error{queries.ErrInvalidClass, queries.ErrInvalidQuota, queries.ErrClassQuota} {
			s.mockAvailability.EXPECT().
				Availability(gomock.Any(), "12556", date, gomock.Any(), gomock.Any()).
				Return(nil, qerr)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/12556/2026-09-10/XX/GN", nil, "")
			commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid class or quota code")
		}
	})

	s.Run("unknown train", func() {
		s.mockAvailability.EXPECT().
			Availability(gomock.Any(), "00000", date, train.ClassSleeper, train.QuotaGeneral).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "train not found", nil))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/00000/2026-09-10/SL/GN", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Train not found")
	})

	s.Run("class the train does not carry", func() {
		s.mockAvailability.EXPECT().
			Availability(gomock.Any(), "12556", date, train.ClassFirstAC, train.QuotaGeneral).
			Return(nil, queries.ErrClassNotOffered)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/12556/2026-09-10/1A/GN", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Class is not offered on this train")
	})

	s.Run("store failure", func() {
		s.mockAvailability.EXPECT().
			Availability(gomock.Any(), "12556", date, train.ClassSleeper, train.QuotaGeneral).
			Return(nil, infra.WrapRepoErr(infra.KindDBFailure, "query failed", nil))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/12556/2026-09-10/SL/GN", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
