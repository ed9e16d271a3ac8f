package handler

import (
	"net/http"

	"github.com/Eursukkul/event-ticketing/internal/dto"
	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/navigation"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/view"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	svc service.EventService
	nav *navigation.Navigator
	src view.Source
}

func NewSessionHandler(svc service.EventService, nav *navigation.Navigator, src view.Source) *SessionHandler {
	return &SessionHandler{svc: svc, nav: nav, src: src}
}

func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSession)
	g.PUT("/user", h.SwitchUser)
	g.PUT("/navigation", h.Navigate)
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session())
}

// SwitchUser changes the acting user and sends the session back to the
// event list.
func (h *SessionHandler) SwitchUser(c echo.Context) error {
	var req dto.SwitchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	if _, err := h.svc.SetCurrentUser(c.Request().Context(), req.UserID); err != nil {
		return toHTTPError(err)
	}
	h.nav.Reset()

	return c.JSON(http.StatusOK, h.session())
}

func (h *SessionHandler) Navigate(c echo.Context) error {
	var req dto.NavigationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if !req.Page.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown page")
	}

	if req.Page == models.PageEventDetails && req.EventID != "" {
		if _, err := h.src.Event(req.EventID); err != nil {
			return toHTTPError(err)
		}
		h.nav.ViewEventDetails(req.EventID)
	} else {
		h.nav.NavigateTo(req.Page)
	}

	return c.JSON(http.StatusOK, h.session())
}

func (h *SessionHandler) session() dto.SessionResponse {
	return dto.SessionResponse{
		Header:     view.NewHeader(h.src, h.nav.Active()),
		Navigation: h.nav.Current(),
	}
}
