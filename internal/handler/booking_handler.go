package handler

import (
	"net/http"

	"github.com/Eursukkul/event-ticketing/internal/dto"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	flow service.BookingFlow
}

func NewBookingHandler(flow service.BookingFlow) *BookingHandler {
	return &BookingHandler{flow: flow}
}

// RegisterRoutes expects the events group.
func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/:id/booking", h.RequestBooking)
	g.GET("/:id/booking", h.GetBookingStatus)
	g.DELETE("/:id/booking", h.DismissBooking)
}

// RequestBooking accepts the request and answers before the ticket is
// booked. Clients poll GetBookingStatus for the outcome.
func (h *BookingHandler) RequestBooking(c echo.Context) error {
	id := c.Param("id")
	state, err := h.flow.Request(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusAccepted, dto.BookingStatusResponse{EventID: id, FlowState: state})
}

func (h *BookingHandler) GetBookingStatus(c echo.Context) error {
	id := c.Param("id")
	return c.JSON(http.StatusOK, dto.BookingStatusResponse{EventID: id, FlowState: h.flow.Status(id)})
}

func (h *BookingHandler) DismissBooking(c echo.Context) error {
	if err := h.flow.Dismiss(c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
