package dto

import (
	"github.com/Eursukkul/event-ticketing/internal/navigation"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/view"
)

type SessionResponse struct {
	Header     view.Header      `json:"header"`
	Navigation navigation.State `json:"navigation"`
}

type BookingStatusResponse struct {
	EventID string `json:"eventId"`
	service.FlowState
}

type ErrorResponse struct {
	Message string `json:"message"`
}
