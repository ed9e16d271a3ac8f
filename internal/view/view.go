// Package view builds the read-only projections a client renders: event
// cards, event details, tickets, the organizer dashboard, attendee lists
// and the header. Nothing here mutates the store.
package view

import (
	"errors"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

// ErrAccessDenied is returned for a page the current user's role may not
// see.
var ErrAccessDenied = errors.New("access denied")

// Source is the read side of the store.
type Source interface {
	CurrentUser() models.User
	Users() []models.User
	Events() []models.Event
	Bookings() []models.Booking
	Event(id string) (models.Event, error)
	AttendeesForEvent(eventID string) ([]models.Attendee, error)
}

const (
	cardDateLayout      = "Jan 2, 2006"
	longDateLayout      = "Monday, January 2, 2006 at 3:04 PM"
	ticketDateLayout    = "Mon, Jan 2, 3:04 PM"
	shortDateLayout     = "1/2/2006"
	organizerNotice     = "Organizers cannot book tickets."
	soldOutLabel        = "Sold Out"
	noTicketsMessage    = "You haven't booked any tickets yet."
	noEventsMessage     = "You have not created any events yet."
	noAttendeesMessage  = "No attendees have booked tickets for this event yet."
	accessDeniedMessage = "Access Denied."
)
