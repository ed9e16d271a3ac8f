package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/Eursukkul/event-ticketing/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEvents_Handler(t *testing.T) {
	st := newTestStore(t, sampleEvent("evt_1", 10, 4), sampleEvent("evt_2", 5, 5))
	c, rec := newJSONContext(http.MethodGet, "/api/v1/events", "")

	h := NewEventHandler(&mockEventService{}, &mockBookingFlow{}, st, newTestLogger())
	err := h.ListEvents(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var cards []view.EventCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, 6, cards[0].TicketsLeft)
	assert.True(t, cards[1].SoldOut)
}

func TestCreateEvent_Handler_Success(t *testing.T) {
	var got models.EventDraft
	svc := &mockEventService{
		createFn: func(ctx context.Context, draft models.EventDraft) (models.Event, error) {
			got = draft
			return models.Event{ID: "evt_new", Title: draft.Title, TotalTickets: draft.TotalTickets, OrganizerID: techInc.ID}, nil
		},
	}
	body := `{"title":"Go Meetup","description":"Talks","date":"2026-05-01T18:00:00Z","location":"Berlin","price":0,"totalTickets":80}`
	c, rec := newJSONContext(http.MethodPost, "/api/v1/events", body)

	h := NewEventHandler(svc, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	err := h.CreateEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Go Meetup", got.Title)
	assert.Equal(t, 80, got.TotalTickets)
	assert.Equal(t, "Berlin", got.Location)

	var resp models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt_new", resp.ID)
	assert.Equal(t, techInc.ID, resp.OrganizerID)
}

func TestCreateEvent_Handler_BadRequest(t *testing.T) {
	bodies := map[string]string{
		"malformed":      `{"title":`,
		"empty title":    `{"title":"  ","date":"2026-05-01T18:00:00Z","totalTickets":10}`,
		"no tickets":     `{"title":"Go Meetup","date":"2026-05-01T18:00:00Z","totalTickets":0}`,
		"negative price": `{"title":"Go Meetup","date":"2026-05-01T18:00:00Z","totalTickets":10,"price":-1}`,
		"missing date":   `{"title":"Go Meetup","totalTickets":10}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/api/v1/events", body)

			h := NewEventHandler(&mockEventService{}, &mockBookingFlow{}, newTestStore(t), newTestLogger())
			err := h.CreateEvent(c)

			assertHTTPError(t, err, http.StatusBadRequest)
		})
	}
}

func TestCreateEvent_Handler_DateStoredInUTC(t *testing.T) {
	var got models.EventDraft
	svc := &mockEventService{
		createFn: func(ctx context.Context, draft models.EventDraft) (models.Event, error) {
			got = draft
			return models.Event{ID: "evt_new", Date: draft.Date}, nil
		},
	}
	body := `{"title":"Go Meetup","date":"2026-05-01T20:00:00+02:00","totalTickets":10}`
	c, _ := newJSONContext(http.MethodPost, "/api/v1/events", body)

	h := NewEventHandler(svc, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	require.NoError(t, h.CreateEvent(c))

	assert.Equal(t, time.UTC, got.Date.Location())
	assert.True(t, time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC).Equal(got.Date), got.Date.String())
}

func TestCreateEvent_Handler_Forbidden(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, draft models.EventDraft) (models.Event, error) {
			return models.Event{}, fmt.Errorf("create event: %w: only organizers can create events", store.ErrUnauthorized)
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/v1/events", `{"title":"Go Meetup","date":"2026-05-01T18:00:00Z","totalTickets":10}`)

	h := NewEventHandler(svc, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	err := h.CreateEvent(c)

	assertHTTPError(t, err, http.StatusForbidden)
}

func TestGetEvent_Handler_Success(t *testing.T) {
	st := newTestStore(t, sampleEvent("evt_1", 10, 3))
	flow := &mockBookingFlow{
		statusFn: func(eventID string) service.FlowState {
			return service.FlowState{Status: service.StatusBooking}
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/api/v1/events/evt_1", "")
	c.SetParamNames("id")
	c.SetParamValues("evt_1")

	h := NewEventHandler(&mockEventService{}, flow, st, newTestLogger())
	err := h.GetEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp view.EventDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt_1", resp.Event.ID)
	assert.Equal(t, "7 of 10 tickets remaining", resp.Availability)
	assert.Equal(t, service.StatusBooking, resp.Booking.Status)
	assert.False(t, resp.CanBook)
}

func TestGetEvent_Handler_NotFound(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/api/v1/events/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewEventHandler(&mockEventService{}, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	err := h.GetEvent(c)

	assertHTTPError(t, err, http.StatusNotFound)
}

func TestUpdateEvent_Handler_Success(t *testing.T) {
	var got models.Event
	svc := &mockEventService{
		updateFn: func(ctx context.Context, event models.Event) (models.Event, error) {
			got = event
			return event, nil
		},
	}
	body := `{"title":"Renamed","date":"2026-05-01T18:00:00Z","price":10,"totalTickets":20,"ticketsSold":4,"organizerId":"user_organizer_1"}`
	c, rec := newJSONContext(http.MethodPut, "/api/v1/events/evt_1", body)
	c.SetParamNames("id")
	c.SetParamValues("evt_1")

	h := NewEventHandler(svc, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	err := h.UpdateEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "evt_1", got.ID)
	assert.Equal(t, 4, got.TicketsSold)
	assert.Equal(t, techInc.ID, got.OrganizerID)
}

func TestUpdateEvent_Handler_MissingDate(t *testing.T) {
	body := `{"title":"Renamed","totalTickets":20,"organizerId":"user_organizer_1"}`
	c, _ := newJSONContext(http.MethodPut, "/api/v1/events/evt_1", body)
	c.SetParamNames("id")
	c.SetParamValues("evt_1")

	h := NewEventHandler(&mockEventService{}, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	err := h.UpdateEvent(c)

	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestUpdateEvent_Handler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not owner", fmt.Errorf("update event: %w", store.ErrUnauthorized), http.StatusForbidden},
		{"missing", fmt.Errorf("update event: %w", store.ErrEventNotFound), http.StatusNotFound},
		{"oversold", fmt.Errorf("update event: %w", store.ErrValidation), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockEventService{
				updateFn: func(ctx context.Context, event models.Event) (models.Event, error) {
					return models.Event{}, tt.err
				},
			}
			body := `{"title":"Renamed","date":"2026-05-01T18:00:00Z","totalTickets":20,"organizerId":"user_organizer_1"}`
			c, _ := newJSONContext(http.MethodPut, "/api/v1/events/evt_1", body)
			c.SetParamNames("id")
			c.SetParamValues("evt_1")

			h := NewEventHandler(svc, &mockBookingFlow{}, newTestStore(t), newTestLogger())
			err := h.UpdateEvent(c)

			assertHTTPError(t, err, tt.code)
		})
	}
}

func TestDeleteEvent_Handler(t *testing.T) {
	var deleted string
	svc := &mockEventService{
		deleteFn: func(ctx context.Context, eventID string) error {
			deleted = eventID
			return nil
		},
	}
	c, rec := newJSONContext(http.MethodDelete, "/api/v1/events/evt_1", "")
	c.SetParamNames("id")
	c.SetParamValues("evt_1")

	h := NewEventHandler(svc, &mockBookingFlow{}, newTestStore(t), newTestLogger())
	err := h.DeleteEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "evt_1", deleted)
}

func TestListAttendees_Handler(t *testing.T) {
	st := newTestStore(t, sampleEvent("evt_1", 10, 0))
	_, err := st.BookTicket("evt_1")
	require.NoError(t, err)
	_, err = st.SetCurrentUser(techInc.ID)
	require.NoError(t, err)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/events/evt_1/attendees", "")
	c.SetParamNames("id")
	c.SetParamValues("evt_1")

	h := NewEventHandler(&mockEventService{}, &mockBookingFlow{}, st, newTestLogger())
	err = h.ListAttendees(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp view.AttendeesView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Attendees, 1)
	assert.Equal(t, "Alex Johnson", resp.Attendees[0].Name)
}

func TestListAttendees_Handler_AttendeeForbidden(t *testing.T) {
	st := newTestStore(t, sampleEvent("evt_1", 10, 0))
	c, _ := newJSONContext(http.MethodGet, "/api/v1/events/evt_1/attendees", "")
	c.SetParamNames("id")
	c.SetParamValues("evt_1")

	h := NewEventHandler(&mockEventService{}, &mockBookingFlow{}, st, newTestLogger())
	err := h.ListAttendees(c)

	assertHTTPError(t, err, http.StatusForbidden)
}
