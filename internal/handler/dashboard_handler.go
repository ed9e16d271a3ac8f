package handler

import (
	"net/http"

	"github.com/Eursukkul/event-ticketing/internal/view"
	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	src view.Source
}

func NewDashboardHandler(src view.Source) *DashboardHandler {
	return &DashboardHandler{src: src}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tickets", h.MyTickets)
	g.GET("/organizer", h.Organizer)
}

func (h *DashboardHandler) MyTickets(c echo.Context) error {
	tickets, err := view.MyTickets(h.src)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, tickets)
}

func (h *DashboardHandler) Organizer(c echo.Context) error {
	dashboard, err := view.OrganizerDashboard(h.src)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
