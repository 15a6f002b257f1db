package api

import (
	"net/http"

	resdto "railbook/internal/handler/dto/response"
	"railbook/internal/infra"
	"railbook/internal/pkg/pnr"
	"railbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PNRHandler struct {
	pnrQueries queries.PNRQueries
}

func NewPNRHandler(pnrQueries queries.PNRQueries) *PNRHandler {
	return &PNRHandler{
		pnrQueries: pnrQueries,
	}
}

// @Summary PNR status
// @Description Current status of a reservation, including queue position
// @Tags pnr
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} resdto.PNRStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pnr/{pnr} [get]
func (h *PNRHandler) GetStatus(c *gin.Context) {
	code := c.Param("pnr")
	if !pnr.IsValid(code) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PNR format",
		})
		return
	}

	view, err := h.pnrQueries.Status(c.Request.Context(), code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "PNR not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPNRStatusView(view))
}
