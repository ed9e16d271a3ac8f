package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/clock"
	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventService ---

type mockEventService struct {
	setUserFn func(ctx context.Context, userID string) (models.User, error)
	createFn  func(ctx context.Context, draft models.EventDraft) (models.Event, error)
	updateFn  func(ctx context.Context, event models.Event) (models.Event, error)
	deleteFn  func(ctx context.Context, eventID string) error
}

func (m *mockEventService) SetCurrentUser(ctx context.Context, userID string) (models.User, error) {
	return m.setUserFn(ctx, userID)
}
func (m *mockEventService) CreateEvent(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	return m.createFn(ctx, draft)
}
func (m *mockEventService) UpdateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	return m.updateFn(ctx, event)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, eventID string) error {
	return m.deleteFn(ctx, eventID)
}

// --- Mock BookingFlow ---

type mockBookingFlow struct {
	requestFn func(ctx context.Context, eventID string) (service.FlowState, error)
	statusFn  func(eventID string) service.FlowState
	dismissFn func(eventID string) error
}

func (m *mockBookingFlow) Request(ctx context.Context, eventID string) (service.FlowState, error) {
	return m.requestFn(ctx, eventID)
}
func (m *mockBookingFlow) Status(eventID string) service.FlowState {
	if m.statusFn == nil {
		return service.FlowState{Status: service.StatusIdle}
	}
	return m.statusFn(eventID)
}
func (m *mockBookingFlow) Dismiss(eventID string) error {
	return m.dismissFn(eventID)
}
func (m *mockBookingFlow) Forget(eventID string) {}

// --- Helpers ---

var (
	testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	alex    = models.User{ID: "user_attendee_1", Name: "Alex Johnson", Email: "alex@example.com", Role: models.RoleAttendee}
	techInc = models.User{ID: "user_organizer_1", Name: "Tech Events Inc.", Email: "contact@techevents.com", Role: models.RoleOrganizer}
)

func newTestStore(t *testing.T, events ...models.Event) *store.Store {
	t.Helper()
	st, err := store.New([]models.User{alex, techInc}, events, store.WithClock(clock.Fake(testNow)))
	require.NoError(t, err)
	return st
}

func sampleEvent(id string, total, sold int) models.Event {
	return models.Event{
		ID:           id,
		Title:        "Event " + id,
		Date:         time.Date(2026, 4, 15, 19, 30, 0, 0, time.UTC),
		Location:     "Online",
		Price:        49,
		TotalTickets: total,
		TicketsSold:  sold,
		OrganizerID:  techInc.ID,
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, code, he.Code)
}
