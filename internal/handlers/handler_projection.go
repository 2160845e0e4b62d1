package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/gin-gonic/gin"
)

// projectionHandler serves the net-worth charts.
type projectionHandler struct {
	projectionService portssvc.ProjectionSvcFacade
}

func registerProjectionRoutes(rg *gin.RouterGroup, projectionService portssvc.ProjectionSvcFacade) {
	h := &projectionHandler{projectionService: projectionService}

	projection := rg.Group("/projection")
	{
		projection.GET("", h.getTimeline)
		projection.GET("/accounts", h.getAccountTimeline)
	}
}

// getTimeline godoc
// @Summary Aggregate net-worth timeline
// @Description Reconstructed history joined to the forecast, optionally in today's money and thinned for display.
// @Tags projection
// @Produce json
// @Param months query int false "Forecast horizon in months" default(120)
// @Param real query bool false "Deflate values to today's money"
// @Param inflationRate query number false "Annual inflation %, defaults to the profile's"
// @Param history query bool false "Include reconstructed history" default(true)
// @Param thin query bool false "Sample points for long horizons"
// @Success 200 {object} dto.TimelineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projection [get]
func (h *projectionHandler) getTimeline(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q dto.ProjectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	timeline, err := h.projectionService.GetTimeline(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err, "User not found", "Failed to compute projection")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimelineResponse(timeline))
}

// getAccountTimeline godoc
// @Summary Per-account timeline
// @Tags projection
// @Produce json
// @Param category query string false "asset or debt"
// @Param months query int false "Forecast horizon in months" default(120)
// @Param real query bool false "Deflate forecast values to today's money"
// @Param inflationRate query number false "Annual inflation %, defaults to the profile's"
// @Param sign query string false "magnitude or signed" default(magnitude)
// @Param history query bool false "Include reconstructed history" default(true)
// @Param thin query bool false "Sample points for long horizons"
// @Success 200 {object} dto.AccountTimelineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projection/accounts [get]
func (h *projectionHandler) getAccountTimeline(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q dto.AccountProjectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	timeline, err := h.projectionService.GetAccountTimeline(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err, "User not found", "Failed to compute projection")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTimelineResponse(timeline))
}
