package service

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/clock"
	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_SetCurrentUser(t *testing.T) {
	st := newTestStore(t, clock.Fake(testNow))
	svc := NewEventService(st, nil, nil, newTestLogger())

	user, err := svc.SetCurrentUser(context.Background(), organizer.ID)
	require.NoError(t, err)
	assert.Equal(t, organizer, user)
	assert.Equal(t, organizer, st.CurrentUser())

	_, err = svc.SetCurrentUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestEventService_CreateEvent_Publishes(t *testing.T) {
	st := newTestStore(t, clock.Fake(testNow))
	pub := &mockPublisher{}
	svc := NewEventService(st, nil, pub, newTestLogger())
	_, err := svc.SetCurrentUser(context.Background(), organizer.ID)
	require.NoError(t, err)

	event, err := svc.CreateEvent(context.Background(), models.EventDraft{
		Title:        "Go Meetup",
		Date:         testNow.Add(7 * 24 * time.Hour),
		TotalTickets: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, organizer.ID, event.OrganizerID)
	assert.Equal(t, []string{"event.created"}, pub.keys())
	assert.Equal(t, event, pub.messages[0].payload)
}

func TestEventService_CreateEvent_Unauthorized(t *testing.T) {
	st := newTestStore(t, clock.Fake(testNow))
	pub := &mockPublisher{}
	svc := NewEventService(st, nil, pub, newTestLogger())

	_, err := svc.CreateEvent(context.Background(), models.EventDraft{Title: "x", TotalTickets: 1})

	assert.ErrorIs(t, err, store.ErrUnauthorized)
	assert.Empty(t, pub.keys())
	assert.Empty(t, st.Events())
}

func TestEventService_UpdateAndDelete(t *testing.T) {
	st := newTestStore(t, clock.Fake(testNow), sampleEvent("evt_1", 10, 0))
	pub := &mockPublisher{}
	svc := NewEventService(st, nil, pub, newTestLogger())
	_, err := svc.SetCurrentUser(context.Background(), organizer.ID)
	require.NoError(t, err)

	changed := sampleEvent("evt_1", 12, 0)
	changed.Title = "Renamed"
	updated, err := svc.UpdateEvent(context.Background(), changed)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(t, svc.DeleteEvent(context.Background(), "evt_1"))
	assert.Empty(t, st.Events())

	assert.Equal(t, []string{"event.updated", "event.deleted"}, pub.keys())
	assert.Equal(t, map[string]string{"id": "evt_1"}, pub.messages[1].payload)
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	st := newTestStore(t, clock.Fake(testNow))
	svc := NewEventService(st, nil, nil, newTestLogger())
	_, err := svc.SetCurrentUser(context.Background(), organizer.ID)
	require.NoError(t, err)

	err = svc.DeleteEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrEventNotFound)
}

func TestEventService_PublisherFailureIsNotReturned(t *testing.T) {
	st := newTestStore(t, clock.Fake(testNow))
	svc := NewEventService(st, nil, &mockPublisher{err: errBrokerDown}, newTestLogger())
	_, err := svc.SetCurrentUser(context.Background(), organizer.ID)
	require.NoError(t, err)

	_, err = svc.CreateEvent(context.Background(), models.EventDraft{Title: "Go Meetup", TotalTickets: 10})

	require.NoError(t, err)
	assert.Len(t, st.Events(), 1)
}

func TestEventService_DeleteEvent_ForgetsBookingStates(t *testing.T) {
	c := clock.Fake(testNow)
	st := newTestStore(t, c, sampleEvent("evt_1", 10, 0), sampleEvent("evt_2", 10, 0))
	flow := NewBookingFlow(st, c, DefaultBookingDelay, nil, newTestLogger())
	svc := NewEventService(st, flow, nil, newTestLogger())

	_, err := flow.Request(context.Background(), "evt_1")
	require.NoError(t, err)
	_, err = flow.Request(context.Background(), "evt_2")
	require.NoError(t, err)
	c.Advance(DefaultBookingDelay)

	_, err = svc.SetCurrentUser(context.Background(), organizer.ID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEvent(context.Background(), "evt_1"))
	_, err = svc.SetCurrentUser(context.Background(), attendee.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusIdle, flow.Status("evt_1").Status)
	assert.Equal(t, StatusSuccess, flow.Status("evt_2").Status)
}
