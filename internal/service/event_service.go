package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/Eursukkul/event-ticketing/pkg/rabbitmq"
)

// Publisher announces committed store mutations. A nil Publisher
// disables announcements.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type EventService interface {
	SetCurrentUser(ctx context.Context, userID string) (models.User, error)
	CreateEvent(ctx context.Context, draft models.EventDraft) (models.Event, error)
	UpdateEvent(ctx context.Context, event models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type eventService struct {
	store     *store.Store
	flow      BookingFlow
	publisher Publisher
	logger    *slog.Logger
}

// NewEventService builds the service. flow may be nil; when set, booking
// states of deleted events are dropped from it.
func NewEventService(st *store.Store, flow BookingFlow, publisher Publisher, logger *slog.Logger) EventService {
	return &eventService{store: st, flow: flow, publisher: publisher, logger: logger}
}

func (s *eventService) SetCurrentUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.store.SetCurrentUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("switch user: %w", err)
	}
	s.logger.InfoContext(ctx, "current user switched",
		"user_id", user.ID,
		"role", user.Role,
	)
	return user, nil
}

func (s *eventService) CreateEvent(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	event, err := s.store.AddEvent(draft)
	if err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}
	s.logger.InfoContext(ctx, "event created",
		"event_id", event.ID,
		"organizer_id", event.OrganizerID,
		"total_tickets", event.TotalTickets,
	)
	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEventCreated, event)
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	updated, err := s.store.UpdateEvent(event)
	if err != nil {
		return models.Event{}, fmt.Errorf("update event: %w", err)
	}
	s.logger.InfoContext(ctx, "event updated", "event_id", updated.ID)
	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEventUpdated, updated)
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.store.DeleteEvent(eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if s.flow != nil {
		s.flow.Forget(eventID)
	}
	s.logger.InfoContext(ctx, "event deleted", "event_id", eventID)
	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEventDeleted, map[string]string{"id": eventID})
	return nil
}

// publish only logs failures. The store change is already committed.
func publish(ctx context.Context, p Publisher, logger *slog.Logger, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		logger.WarnContext(ctx, "failed to publish domain event",
			"routing_key", routingKey,
			"error", err,
		)
	}
}
