//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"railbook/internal/domain/fare"
	"railbook/internal/handler/api"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/pkg/errs"
	"railbook/internal/usecase/commands"
	commonhttp "railbook/tests/common/httptest"
	commandsmock "railbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func mockAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", "passenger")
		c.Next()
	}
}

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	userID       uuid.UUID
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.userID = uuid.New()

	handler := api.NewQuoteHandler(s.mockCommands)
	s.router.POST("/quotes", mockAuth(s.userID), handler.CreateQuote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func validQuoteBody() map[string]any {
	return map[string]any{
		"train_number": "12556",
		"service_date": "2026-09-10",
		"class":        "SL",
		"quota":        "GN",
		"from_station": "NDLS",
		"to_station":   "GKP",
		"passengers":   2,
	}
}

func (s *QuoteHandlerTestSuite) TestCreateQuote() {
	s.Run("returns the priced quote", func() {
		t := s.T()
		token := uuid.New()
		expiresAt := time.Now().Add(5 * time.Minute).UTC()

		s.mockCommands.EXPECT().
			CreateQuote(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateQuoteInput) (*commands.QuoteResult, error) {
				s.Equal("12556", in.TrainNumber)
				s.Equal(int32(2), in.Passengers)
				return &commands.QuoteResult{
					Token:        token,
					TrainNumber:  in.TrainNumber,
					ServiceDate:  in.ServiceDate,
					Class:        "SL",
					Quota:        "GN",
					FromStation:  in.FromStation,
					ToStation:    in.ToStation,
					DistanceKm:   920,
					Passengers:   2,
					FarePaise:    42000,
					FareVersion:  fare.CurrentVersion,
					Availability: "AVAILABLE",
					ExpiresAt:    expiresAt,
				}, nil
			})

		w := commonhttp.PerformRequest(t, s.router, http.MethodPost, "/quotes", validQuoteBody(), "token")
		s.Equal(http.StatusCreated, w.Code)

		var res resdto.QuoteResponse
		commonhttp.DecodeResponseBody(t, w, &res)
		s.Equal(token, res.Token)
		s.Equal("2026-09-10", res.ServiceDate)
		s.Equal(int64(42000), res.FarePaise)
		s.Equal("AVAILABLE", res.Availability)
	})

	s.Run("requires authentication", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", validQuoteBody(), "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("rejects a malformed body", func() {
		body := validQuoteBody()
		body["passengers"] = 0

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("rejects a bad service date", func() {
		body := validQuoteBody()
		body["service_date"] = "10-09-2026"

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid service date")
	})

	s.Run("maps usecase errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"train not found", commands.ErrTrainNotFound, http.StatusNotFound, "Train not found"},
			{"train not running", commands.ErrTrainNotRunning, http.StatusBadRequest, "does not run"},
			{"class not offered", commands.ErrClassNotOffered, http.StatusBadRequest, "not offered"},
			{"invalid segment", commands.ErrInvalidSegment, http.StatusBadRequest, "Invalid journey segment"},
			{"invalid class quota", commands.ErrInvalidClassQuota, http.StatusBadRequest, "Invalid class or quota"},
			{"date in past", commands.ErrDateInPast, http.StatusBadRequest, "in the past"},
			{"fare gap is a server error", fare.ErrFareNotFound, http.StatusInternalServerError, "Fare configuration error"},
			{"unexpected failure", errs.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateQuote(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.err)

				w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", validQuoteBody(), "token")
				commonhttp.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantMsg)
			})
		}
	})
}
