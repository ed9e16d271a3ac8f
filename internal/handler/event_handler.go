package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Eursukkul/event-ticketing/internal/dto"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/Eursukkul/event-ticketing/internal/view"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc    service.EventService
	flow   service.BookingFlow
	src    view.Source
	logger *slog.Logger
}

func NewEventHandler(svc service.EventService, flow service.BookingFlow, src view.Source, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, flow: flow, src: src, logger: logger}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.GET("/:id/attendees", h.ListAttendees)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, view.EventCards(h.src))
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || req.TotalTickets <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "title and totalTickets (>0) are required")
	}
	if req.Date.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	if req.Price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	event, err := h.svc.CreateEvent(c.Request().Context(), req.ToDraft())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id := c.Param("id")
	detail, err := view.NewEventDetail(h.src, id, h.flow.Status(id))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, detail)
}

// UpdateEvent replaces the whole event, ticketsSold included.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || req.TotalTickets <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "title and totalTickets (>0) are required")
	}
	if req.Date.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), req.ToEvent(c.Param("id")))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.svc.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *EventHandler) ListAttendees(c echo.Context) error {
	attendees, err := view.AttendeesList(h.src, c.Param("id"))
	if errors.Is(err, store.ErrOrphanedBooking) {
		h.logger.WarnContext(c.Request().Context(), "attendee list is incomplete",
			"event_id", c.Param("id"),
			"error", err,
		)
	} else if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, attendees)
}
