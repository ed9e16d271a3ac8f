package service

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/clock"
	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	attendee  = models.User{ID: "user_attendee_1", Name: "Alex Johnson", Email: "alex@example.com", Role: models.RoleAttendee}
	attendee2 = models.User{ID: "user_attendee_2", Name: "Sam Lee", Email: "sam@example.com", Role: models.RoleAttendee}
	organizer = models.User{ID: "user_organizer_1", Name: "Tech Events Inc.", Email: "contact@techevents.com", Role: models.RoleOrganizer}
)

// --- Mock Publisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	mu       sync.Mutex
	messages []published
	err      error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, published{key: routingKey, payload: payload})
	return nil
}

func (m *mockPublisher) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, len(m.messages))
	for i, msg := range m.messages {
		keys[i] = msg.key
	}
	return keys
}

var errBrokerDown = errors.New("broker down")

// --- Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, c clock.Clock, events ...models.Event) *store.Store {
	t.Helper()
	st, err := store.New([]models.User{attendee, attendee2, organizer}, events, store.WithClock(c))
	require.NoError(t, err)
	return st
}

func sampleEvent(id string, total, sold int) models.Event {
	return models.Event{
		ID:           id,
		Title:        "Event " + id,
		Date:         testNow.Add(30 * 24 * time.Hour),
		Location:     "Online",
		Price:        99,
		TotalTickets: total,
		TicketsSold:  sold,
		OrganizerID:  organizer.ID,
	}
}
