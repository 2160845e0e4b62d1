package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/dto"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to account events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := &eventHandler{eventService: eventService}

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.createEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// listEvents godoc
// @Summary List all events of the logged-in user
// @Description Events are ordered by date, oldest first
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Event not found", "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventResponse(events))
}

// createEvent godoc
// @Summary Record an account event
// @Description A balance_update that becomes the latest event of its account also sets the account's balance.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /api/v1/events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Account not found", "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Change the date or balance of an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /api/v1/events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Event not found", "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /api/v1/events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Event not found", "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}
