package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/clock"
	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/Eursukkul/event-ticketing/pkg/rabbitmq"
)

const DefaultBookingDelay = time.Second

const (
	failedBookingMessage  = "Failed to book ticket. Please try again."
	soldOutMessage        = "Sorry, this event is sold out."
	sessionChangedMessage = "You switched users before the booking completed. Please try again."
)

var ErrBookingInProgress = errors.New("a booking for this event is already in progress")

type BookingStatus string

const (
	StatusIdle    BookingStatus = "idle"
	StatusBooking BookingStatus = "booking"
	StatusSuccess BookingStatus = "success"
	StatusError   BookingStatus = "error"
)

type FlowState struct {
	Status  BookingStatus   `json:"status"`
	Booking *models.Booking `json:"booking,omitempty"`
	Message string          `json:"message,omitempty"`
}

// BookingFlow puts the simulated network delay in front of
// store.BookTicket. The store call itself stays synchronous; the flow
// only decides when it runs and remembers how it ended, per user and
// event.
type BookingFlow interface {
	Request(ctx context.Context, eventID string) (FlowState, error)
	Status(eventID string) FlowState
	Dismiss(eventID string) error
	Forget(eventID string)
}

type flowKey struct {
	userID  string
	eventID string
}

type bookingFlow struct {
	store     *store.Store
	clock     clock.Clock
	delay     time.Duration
	publisher Publisher
	logger    *slog.Logger

	mu     sync.Mutex
	states map[flowKey]FlowState
}

func NewBookingFlow(st *store.Store, c clock.Clock, delay time.Duration, publisher Publisher, logger *slog.Logger) BookingFlow {
	return &bookingFlow{
		store:     st,
		clock:     c,
		delay:     delay,
		publisher: publisher,
		logger:    logger,
		states:    make(map[flowKey]FlowState),
	}
}

// Request schedules exactly one booking attempt for the current user.
// The attempt cannot be cancelled; it fires after the configured delay
// and records a success or error state.
func (f *bookingFlow) Request(ctx context.Context, eventID string) (FlowState, error) {
	user := f.store.CurrentUser()
	if user.Role != models.RoleAttendee {
		return FlowState{}, fmt.Errorf("%w: organizers cannot book tickets", store.ErrUnauthorized)
	}
	if _, err := f.store.Event(eventID); err != nil {
		return FlowState{}, fmt.Errorf("request booking: %w", err)
	}

	key := flowKey{userID: user.ID, eventID: eventID}
	f.mu.Lock()
	if f.states[key].Status == StatusBooking {
		f.mu.Unlock()
		return FlowState{}, ErrBookingInProgress
	}
	state := FlowState{Status: StatusBooking}
	f.states[key] = state
	f.mu.Unlock()

	f.logger.InfoContext(ctx, "booking requested",
		"event_id", eventID,
		"user_id", user.ID,
		"delay", f.delay,
	)

	f.clock.AfterFunc(f.delay, func() { f.complete(key) })
	return state, nil
}

func (f *bookingFlow) complete(key flowKey) {
	ctx := context.Background()
	state := f.attempt(ctx, key)

	f.mu.Lock()
	f.states[key] = state
	f.mu.Unlock()
}

func (f *bookingFlow) attempt(ctx context.Context, key flowKey) FlowState {
	booking, err := f.store.BookTicketAs(key.userID, key.eventID)
	switch {
	case errors.Is(err, store.ErrUserChanged):
		f.logger.WarnContext(ctx, "booking abandoned, current user changed",
			"event_id", key.eventID,
			"requested_by", key.userID,
		)
		return FlowState{Status: StatusError, Message: sessionChangedMessage}
	case err != nil:
		f.logger.WarnContext(ctx, "booking failed",
			"event_id", key.eventID,
			"user_id", key.userID,
			"error", err,
		)
		msg := failedBookingMessage
		if errors.Is(err, store.ErrSoldOut) {
			msg = soldOutMessage
		}
		return FlowState{Status: StatusError, Message: msg}
	}

	f.logger.InfoContext(ctx, "booking created",
		"booking_id", booking.ID,
		"event_id", booking.EventID,
		"user_id", booking.UserID,
	)
	publish(ctx, f.publisher, f.logger, rabbitmq.KeyBookingCreated, booking)
	return FlowState{Status: StatusSuccess, Booking: booking}
}

// Status reports the flow state of eventID for the current user.
func (f *bookingFlow) Status(eventID string) FlowState {
	key := flowKey{userID: f.store.CurrentUser().ID, eventID: eventID}
	f.mu.Lock()
	defer f.mu.Unlock()
	if state, ok := f.states[key]; ok {
		return state
	}
	return FlowState{Status: StatusIdle}
}

// Dismiss clears a finished attempt so the user can try again.
func (f *bookingFlow) Dismiss(eventID string) error {
	key := flowKey{userID: f.store.CurrentUser().ID, eventID: eventID}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.states[key].Status == StatusBooking {
		return ErrBookingInProgress
	}
	delete(f.states, key)
	return nil
}

// Forget drops the finished states every user holds for eventID. An
// attempt still in flight is kept and resolves to an error state.
func (f *bookingFlow) Forget(eventID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, state := range f.states {
		if key.eventID == eventID && state.Status != StatusBooking {
			delete(f.states, key)
		}
	}
}
