// Package store holds the authoritative in-memory users, events and
// bookings of a ticketing session, together with the identity that is
// currently acting on them.
//
// Every mutating method checks the current user's role (and, for event
// management, ownership) itself, so callers never need to repeat those
// checks. A failed check leaves all collections untouched and returns
// ErrUnauthorized.
//
// All methods are safe for concurrent use. A single mutex serializes
// them, which also makes the sold-out check and the ticket increment in
// BookTicket one atomic step.
package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Eursukkul/event-ticketing/internal/clock"
	"github.com/Eursukkul/event-ticketing/internal/models"
)

type Store struct {
	mu    sync.Mutex
	clock clock.Clock
	newID func(prefix string) string

	users       []models.User
	events      []models.Event
	bookings    []models.Booking
	currentUser models.User
}

type Option func(*Store)

func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator replaces the prefix_<uuidv7> id scheme.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(s *Store) { s.newID = fn }
}

// New seeds a store after checking the seed with ValidateSeed. The first
// user becomes the current user. Events keep the order they are given in.
func New(users []models.User, events []models.Event, opts ...Option) (*Store, error) {
	if err := ValidateSeed(users, events); err != nil {
		return nil, err
	}

	s := &Store{
		clock:       clock.Real(),
		newID:       newTimeOrderedID,
		users:       slices.Clone(users),
		events:      slices.Clone(events),
		bookings:    []models.Booking{},
		currentUser: users[0],
	}
	if s.events == nil {
		s.events = []models.Event{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

// Events returns the events most-recently-created first.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// Bookings returns every booking in the order it was made.
func (s *Store) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookings)
}

func (s *Store) Event(id string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eventIndex(id)
	if i < 0 {
		return models.Event{}, ErrEventNotFound
	}
	return s.events[i], nil
}

func (s *Store) User(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.findUser(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// SetCurrentUser switches the acting identity to a known user.
func (s *Store) SetCurrentUser(userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.findUser(userID)
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	s.currentUser = u
	return u, nil
}

// AddEvent creates an event owned by the current organizer and puts it
// at the front of the list.
func (s *Store) AddEvent(draft models.EventDraft) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser.Role != models.RoleOrganizer {
		return models.Event{}, fmt.Errorf("%w: only organizers can create events", ErrUnauthorized)
	}
	if err := validateEventFields(draft.Title, draft.Price, draft.TotalTickets); err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		ID:           s.newID(eventIDPrefix),
		Title:        draft.Title,
		Description:  draft.Description,
		ImageURL:     draft.ImageURL,
		Date:         draft.Date,
		Location:     draft.Location,
		Price:        draft.Price,
		TotalTickets: draft.TotalTickets,
		TicketsSold:  0,
		OrganizerID:  s.currentUser.ID,
	}

	events := make([]models.Event, 0, len(s.events)+1)
	events = append(events, event)
	events = append(events, s.events...)
	s.events = events

	return event, nil
}

// UpdateEvent overwrites the stored event that has the same ID. The
// caller supplies the full new state, TicketsSold included. Ownership
// cannot be transferred: both the stored and the supplied OrganizerID
// must be the current organizer.
func (s *Store) UpdateEvent(event models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser.Role != models.RoleOrganizer {
		return models.Event{}, fmt.Errorf("%w: only organizers can update events", ErrUnauthorized)
	}
	i := s.eventIndex(event.ID)
	if i < 0 {
		return models.Event{}, fmt.Errorf("%w: %s", ErrEventNotFound, event.ID)
	}
	if s.events[i].OrganizerID != s.currentUser.ID || event.OrganizerID != s.currentUser.ID {
		return models.Event{}, fmt.Errorf("%w: event %s belongs to another organizer", ErrUnauthorized, event.ID)
	}
	if err := validateEventFields(event.Title, event.Price, event.TotalTickets); err != nil {
		return models.Event{}, err
	}
	if event.TicketsSold < 0 || event.TicketsSold > event.TotalTickets {
		return models.Event{}, fmt.Errorf("%w: ticketsSold must be between 0 and totalTickets", ErrValidation)
	}

	events := slices.Clone(s.events)
	events[i] = event
	s.events = events

	return event, nil
}

// DeleteEvent removes an event owned by the current organizer together
// with every booking made for it.
func (s *Store) DeleteEvent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser.Role != models.RoleOrganizer {
		return fmt.Errorf("%w: only organizers can delete events", ErrUnauthorized)
	}
	i := s.eventIndex(eventID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	if s.events[i].OrganizerID != s.currentUser.ID {
		return fmt.Errorf("%w: event %s belongs to another organizer", ErrUnauthorized, eventID)
	}

	s.events = slices.Delete(slices.Clone(s.events), i, i+1)

	bookings := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.EventID != eventID {
			bookings = append(bookings, b)
		}
	}
	s.bookings = bookings

	return nil
}

// BookTicket sells one ticket for eventID to the current attendee.
func (s *Store) BookTicket(eventID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookTicket(eventID)
}

// BookTicketAs is BookTicket for a caller that acted on behalf of userID
// earlier. It fails with ErrUserChanged if userID is no longer the
// current user.
func (s *Store) BookTicketAs(userID, eventID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser.ID != userID {
		return nil, fmt.Errorf("%w: %s is no longer the current user", ErrUserChanged, userID)
	}
	return s.bookTicket(eventID)
}

func (s *Store) bookTicket(eventID string) (*models.Booking, error) {
	if s.currentUser.Role != models.RoleAttendee {
		return nil, fmt.Errorf("%w: only attendees can book tickets", ErrUnauthorized)
	}
	i := s.eventIndex(eventID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}
	if s.events[i].SoldOut() {
		return nil, fmt.Errorf("%w: %s", ErrSoldOut, eventID)
	}

	booking := models.Booking{
		ID:          s.newID(bookingIDPrefix),
		EventID:     eventID,
		UserID:      s.currentUser.ID,
		BookingDate: s.clock.Now(),
	}

	events := slices.Clone(s.events)
	events[i].TicketsSold++
	s.events = events

	bookings := make([]models.Booking, 0, len(s.bookings)+1)
	bookings = append(bookings, s.bookings...)
	s.bookings = append(bookings, booking)

	return &booking, nil
}

// AttendeesForEvent joins the bookings of an event with their users, in
// booking order. It never mutates. Bookings whose user is unknown are
// left out of the result and reported through an ErrOrphanedBooking
// error; the resolved attendees are returned either way.
func (s *Store) AttendeesForEvent(eventID string) ([]models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendees := []models.Attendee{}
	var orphans []string
	for _, b := range s.bookings {
		if b.EventID != eventID {
			continue
		}
		u, ok := s.findUser(b.UserID)
		if !ok {
			orphans = append(orphans, b.ID)
			continue
		}
		attendees = append(attendees, models.Attendee{User: u, Booking: b})
	}

	if len(orphans) > 0 {
		return attendees, fmt.Errorf("%w: %s", ErrOrphanedBooking, strings.Join(orphans, ", "))
	}
	return attendees, nil
}

func (s *Store) eventIndex(id string) int {
	return slices.IndexFunc(s.events, func(e models.Event) bool { return e.ID == id })
}

func (s *Store) findUser(id string) (models.User, bool) {
	i := slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return models.User{}, false
	}
	return s.users[i], true
}

func validateEventFields(title string, price float64, totalTickets int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if totalTickets < 1 {
		return fmt.Errorf("%w: totalTickets must be at least 1", ErrValidation)
	}
	return nil
}
