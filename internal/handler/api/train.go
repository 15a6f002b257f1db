package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"railbook/internal/domain/train"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/infra"
	"railbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TrainHandler struct {
	trainQueries        queries.TrainQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewTrainHandler(trainQueries queries.TrainQueries, availabilityQueries queries.AvailabilityQueries) *TrainHandler {
	return &TrainHandler{
		trainQueries:        trainQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get train
// @Description Full schedule of one train
// @Tags trains
// @Produce json
// @Param number path string true "Train number"
// @Success 200 {object} resdto.TrainResponse
// @Failure 404 {object} map[string]string
// @Router /trains/{number} [get]
func (h *TrainHandler) GetTrain(c *gin.Context) {
	view, err := h.trainQueries.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Train not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTrainView(view))
}

// @Summary List or search trains
// @Description All trains, or those serving from→to when both are given
// @Tags trains
// @Produce json
// @Param from query string false "Origin station code"
// @Param to query string false "Destination station code"
// @Param date query string false "Travel date (YYYY-MM-DD)"
// @Success 200 {array} resdto.TrainListResponse
// @Failure 400 {object} map[string]string
// @Router /trains [get]
func (h *TrainHandler) ListTrains(c *gin.Context) {
	from := strings.ToUpper(strings.TrimSpace(c.Query("from")))
	to := strings.ToUpper(strings.TrimSpace(c.Query("to")))

	var (
		items []*queries.TrainListItem
		err   error
	)
	switch {
	case from == "" && to == "":
		items, err = h.trainQueries.List(c.Request.Context())
	case from != "" && to != "":
		var date time.Time
		if dateStr := c.Query("date"); dateStr != "" {
			date, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid date, expected YYYY-MM-DD",
				})
				return
			}
		}
		items, err = h.trainQueries.Search(c.Request.Context(), from, to, date)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Provide both from and to, or neither",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TrainListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromTrainListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Search stations
// @Description Stations matching a code or name fragment
// @Tags stations
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Router /stations [get]
func (h *TrainHandler) SearchStations(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter q is required",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, err := h.trainQueries.SearchStations(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.StationResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromStationView(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Availability
// @Description Point-in-time seat availability for a train/date/class/quota pool
// @Tags inventory
// @Produce json
// @Param train path string true "Train number"
// @Param date path string true "Service date (YYYY-MM-DD)"
// @Param class path string true "Class code"
// @Param quota path string true "Quota code"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{train}/{date}/{class}/{quota} [get]
func (h *TrainHandler) GetAvailability(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	class := train.Class(strings.ToUpper(c.Param("class")))
	quota := train.Quota(strings.ToUpper(c.Param("quota")))

	view, err := h.availabilityQueries.Availability(c.Request.Context(), c.Param("train"), date, class, quota)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidClass),
			errors.Is(err, queries.ErrInvalidQuota),
			errors.Is(err, queries.ErrClassQuota):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid class or quota code",
			})
		case errors.Is(err, queries.ErrClassNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Class is not offered on this train",
			})
		case errors.Is(err, queries.ErrTrainNotRunning):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Train does not run on the requested date",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Train not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
