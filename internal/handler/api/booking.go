package api

import (
	"errors"
	"net/http"
	"strconv"

	"railbook/internal/domain/booking"
	reqdto "railbook/internal/handler/dto/request"
	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/handler/middleware"
	"railbook/internal/usecase/commands"
	"railbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Redeem a quote token into a reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Book(c.Request.Context(), userID, req.QuoteToken, req.ToInputs())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrQuoteExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Quote expired, request a new one",
			})
		case errors.Is(err, commands.ErrQuoteAlreadyConsumed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Quote was already used for a booking",
			})
		case errors.Is(err, commands.ErrQuoteOwnerMismatch):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Quote belongs to another user",
			})
		case errors.Is(err, commands.ErrPassengerCountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Passenger list does not match the quoted party size",
			})
		case errors.Is(err, booking.ErrInvalidPassenger):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid passenger details",
			})
		case errors.Is(err, commands.ErrInventoryExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Train is fully waitlisted for this class and quota",
			})
		case errors.Is(err, commands.ErrBookingTimeout):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Booking timed out under contention, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookResult(result))
}

// @Summary Cancel booking
// @Description Cancel a reservation and promote waiting passengers
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} resdto.CancelResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{pnr}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), userID, c.Param("pnr"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotReservationOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another user",
			})
		case errors.Is(err, commands.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already cancelled",
			})
		case errors.Is(err, commands.ErrBookingTimeout):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Cancellation timed out under contention, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary List bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results (default 50)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
