package dto

import (
	"time"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

type CreateEventRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Date         time.Time `json:"date" validate:"required"`
	Location     string    `json:"location"`
	Price        float64   `json:"price" validate:"gte=0"`
	TotalTickets int       `json:"totalTickets" validate:"required,gt=0"`
}

func (r CreateEventRequest) ToDraft() models.EventDraft {
	return models.EventDraft{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Date:         r.Date.UTC(),
		Location:     r.Location,
		Price:        r.Price,
		TotalTickets: r.TotalTickets,
	}
}

// UpdateEventRequest carries the full new state of an event. The id
// comes from the path.
type UpdateEventRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Date         time.Time `json:"date" validate:"required"`
	Location     string    `json:"location"`
	Price        float64   `json:"price" validate:"gte=0"`
	TotalTickets int       `json:"totalTickets" validate:"required,gt=0"`
	TicketsSold  int       `json:"ticketsSold" validate:"gte=0"`
	OrganizerID  string    `json:"organizerId" validate:"required"`
}

func (r UpdateEventRequest) ToEvent(id string) models.Event {
	return models.Event{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Date:         r.Date.UTC(),
		Location:     r.Location,
		Price:        r.Price,
		TotalTickets: r.TotalTickets,
		TicketsSold:  r.TicketsSold,
		OrganizerID:  r.OrganizerID,
	}
}

type SwitchUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type NavigationRequest struct {
	Page    models.Page `json:"page" validate:"required"`
	EventID string      `json:"event_id"`
}
