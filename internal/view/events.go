package view

import (
	"fmt"

	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/service"
)

type EventCard struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	ImageURL      string  `json:"imageUrl"`
	FormattedDate string  `json:"formattedDate"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	TicketsLeft   int     `json:"ticketsLeft"`
	SoldOut       bool    `json:"soldOut"`
	Availability  string  `json:"availability"`
}

func NewEventCard(e models.Event) EventCard {
	return EventCard{
		ID:            e.ID,
		Title:         e.Title,
		ImageURL:      e.ImageURL,
		FormattedDate: e.Date.Format(cardDateLayout),
		Location:      e.Location,
		Price:         e.Price,
		TicketsLeft:   e.TicketsLeft(),
		SoldOut:       e.SoldOut(),
		Availability:  availability(e, fmt.Sprintf("%d left", e.TicketsLeft())),
	}
}

// EventCards lists every event in store order.
func EventCards(src Source) []EventCard {
	events := src.Events()
	cards := make([]EventCard, 0, len(events))
	for _, e := range events {
		cards = append(cards, NewEventCard(e))
	}
	return cards
}

type EventDetail struct {
	Event           models.Event      `json:"event"`
	FormattedDate   string            `json:"formattedDate"`
	TicketsLeft     int               `json:"ticketsLeft"`
	SoldOut         bool              `json:"soldOut"`
	Availability    string            `json:"availability"`
	CanBook         bool              `json:"canBook"`
	OrganizerNotice string            `json:"organizerNotice,omitempty"`
	Booking         service.FlowState `json:"booking"`
}

// NewEventDetail describes one event as seen by the current user. A
// booking that is in flight disables the book action.
func NewEventDetail(src Source, eventID string, flow service.FlowState) (EventDetail, error) {
	e, err := src.Event(eventID)
	if err != nil {
		return EventDetail{}, fmt.Errorf("event detail: %w", err)
	}

	user := src.CurrentUser()
	d := EventDetail{
		Event:         e,
		FormattedDate: e.Date.Format(longDateLayout),
		TicketsLeft:   e.TicketsLeft(),
		SoldOut:       e.SoldOut(),
		Availability:  availability(e, fmt.Sprintf("%d of %d tickets remaining", e.TicketsLeft(), e.TotalTickets)),
		CanBook:       user.Role == models.RoleAttendee && !e.SoldOut() && flow.Status != service.StatusBooking,
		Booking:       flow,
	}
	if user.Role == models.RoleOrganizer {
		d.OrganizerNotice = organizerNotice
	}
	return d, nil
}

func availability(e models.Event, remaining string) string {
	if e.SoldOut() {
		return soldOutLabel
	}
	return remaining
}
