package view

import (
	"fmt"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

type DashboardRow struct {
	EventID       string  `json:"eventId"`
	Title         string  `json:"title"`
	TicketsSold   int     `json:"ticketsSold"`
	TotalTickets  int     `json:"totalTickets"`
	SoldPercent   float64 `json:"soldPercent"`
	FormattedDate string  `json:"formattedDate"`
}

type OrganizerDashboardView struct {
	Events  []DashboardRow `json:"events"`
	Message string         `json:"message,omitempty"`
}

// OrganizerDashboard lists the events owned by the current organizer.
func OrganizerDashboard(src Source) (OrganizerDashboardView, error) {
	user := src.CurrentUser()
	if user.Role != models.RoleOrganizer {
		return OrganizerDashboardView{}, fmt.Errorf("%w: %s", ErrAccessDenied, accessDeniedMessage)
	}

	v := OrganizerDashboardView{Events: []DashboardRow{}}
	for _, e := range src.Events() {
		if e.OrganizerID != user.ID {
			continue
		}
		v.Events = append(v.Events, DashboardRow{
			EventID:       e.ID,
			Title:         e.Title,
			TicketsSold:   e.TicketsSold,
			TotalTickets:  e.TotalTickets,
			SoldPercent:   soldPercent(e),
			FormattedDate: e.Date.Format(shortDateLayout),
		})
	}
	if len(v.Events) == 0 {
		v.Message = noEventsMessage
	}
	return v, nil
}

func soldPercent(e models.Event) float64 {
	if e.TotalTickets <= 0 {
		return 0
	}
	return float64(e.TicketsSold) / float64(e.TotalTickets) * 100
}

type AttendeeRow struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	BookingID     string `json:"bookingId"`
	FormattedDate string `json:"formattedDate"`
}

type AttendeesView struct {
	EventID    string        `json:"eventId"`
	EventTitle string        `json:"eventTitle"`
	Attendees  []AttendeeRow `json:"attendees"`
	Message    string        `json:"message,omitempty"`
}

// AttendeesList is shown to the organizer who owns the event. When some
// bookings could not be resolved to a user the view is still returned,
// together with the store's ErrOrphanedBooking.
func AttendeesList(src Source, eventID string) (AttendeesView, error) {
	user := src.CurrentUser()
	if user.Role != models.RoleOrganizer {
		return AttendeesView{}, fmt.Errorf("%w: %s", ErrAccessDenied, accessDeniedMessage)
	}
	e, err := src.Event(eventID)
	if err != nil {
		return AttendeesView{}, fmt.Errorf("attendees: %w", err)
	}
	if e.OrganizerID != user.ID {
		return AttendeesView{}, fmt.Errorf("%w: event %s belongs to another organizer", ErrAccessDenied, eventID)
	}

	attendees, attendErr := src.AttendeesForEvent(eventID)
	v := AttendeesView{
		EventID:    e.ID,
		EventTitle: e.Title,
		Attendees:  make([]AttendeeRow, 0, len(attendees)),
	}
	for _, a := range attendees {
		v.Attendees = append(v.Attendees, AttendeeRow{
			UserID:        a.User.ID,
			Name:          a.User.Name,
			Email:         a.User.Email,
			BookingID:     a.Booking.ID,
			FormattedDate: a.Booking.BookingDate.Format(shortDateLayout),
		})
	}
	if len(v.Attendees) == 0 {
		v.Message = noAttendeesMessage
	}
	return v, attendErr
}
