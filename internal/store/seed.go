package store

import (
	"fmt"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

// ValidateSeed checks the users and events a store is created from:
// unique ids, known roles, events owned by organizers, and ticket counts
// within 0 <= ticketsSold <= totalTickets. Failures wrap ErrValidation.
func ValidateSeed(users []models.User, events []models.Event) error {
	if len(users) == 0 {
		return fmt.Errorf("%w: at least one user is required", ErrValidation)
	}

	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		if u.ID == "" {
			return fmt.Errorf("%w: user %q has no id", ErrValidation, u.Name)
		}
		if _, dup := byID[u.ID]; dup {
			return fmt.Errorf("%w: duplicate user id %q", ErrValidation, u.ID)
		}
		if !u.Role.Valid() {
			return fmt.Errorf("%w: user %q has unknown role %q", ErrValidation, u.ID, u.Role)
		}
		byID[u.ID] = u
	}

	seen := make(map[string]bool, len(events))
	for _, e := range events {
		if e.ID == "" {
			return fmt.Errorf("%w: event %q has no id", ErrValidation, e.Title)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate event id %q", ErrValidation, e.ID)
		}
		seen[e.ID] = true

		owner, ok := byID[e.OrganizerID]
		if !ok {
			return fmt.Errorf("%w: event %q references unknown organizer %q", ErrValidation, e.ID, e.OrganizerID)
		}
		if owner.Role != models.RoleOrganizer {
			return fmt.Errorf("%w: event %q is owned by %q, who is not an organizer", ErrValidation, e.ID, owner.ID)
		}
		if e.Price < 0 {
			return fmt.Errorf("%w: event %q has a negative price", ErrValidation, e.ID)
		}
		if e.TotalTickets < 1 {
			return fmt.Errorf("%w: event %q needs at least one ticket", ErrValidation, e.ID)
		}
		if e.TicketsSold < 0 || e.TicketsSold > e.TotalTickets {
			return fmt.Errorf("%w: event %q has %d of %d tickets sold", ErrValidation, e.ID, e.TicketsSold, e.TotalTickets)
		}
	}
	return nil
}
