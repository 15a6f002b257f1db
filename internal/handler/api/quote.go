package api

import (
	"errors"
	"net/http"

	"railbook/internal/domain/fare"
	reqdto "railbook/internal/handler/dto/request"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/handler/middleware"
	"railbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
	}
}

// @Summary Create quote
// @Description Price a journey and snapshot availability behind a one-shot token
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service date, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.quoteCommands.CreateQuote(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTrainNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Train not found",
			})
		case errors.Is(err, commands.ErrTrainNotRunning):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Train does not run on the requested date",
			})
		case errors.Is(err, commands.ErrClassNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Class is not offered on this train",
			})
		case errors.Is(err, commands.ErrInvalidSegment):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid journey segment for this train",
			})
		case errors.Is(err, commands.ErrInvalidClassQuota):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid class or quota code",
			})
		case errors.Is(err, commands.ErrInvalidParty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Passenger count must be between 1 and 6",
			})
		case errors.Is(err, commands.ErrDateInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service date is in the past",
			})
		case errors.Is(err, fare.ErrFareNotFound):
			// A sellable class/quota with no fare row is a config bug
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Fare configuration error",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromQuoteResult(result))
}
