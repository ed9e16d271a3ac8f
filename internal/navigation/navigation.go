// Package navigation tracks which page a session is looking at and which
// event, if any, is selected. It lives outside the store: moving between
// pages never touches users, events or bookings.
package navigation

import (
	"sync"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

// State is a snapshot of a Navigator.
type State struct {
	Page            models.Page `json:"page"`
	SelectedEventID string      `json:"selectedEventId,omitempty"`
}

type Navigator struct {
	mu    sync.Mutex
	state State
}

func New() *Navigator {
	return &Navigator{state: State{Page: models.PageHome}}
}

// NavigateTo switches to page and drops any selected event. Unknown
// pages fall back to HOME.
func (n *Navigator) NavigateTo(page models.Page) State {
	if !page.Valid() {
		page = models.PageHome
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = State{Page: page}
	return n.state
}

func (n *Navigator) ViewEventDetails(eventID string) State {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = State{Page: models.PageEventDetails, SelectedEventID: eventID}
	return n.state
}

// Reset is called after the current user changes.
func (n *Navigator) Reset() State {
	return n.NavigateTo(models.PageHome)
}

func (n *Navigator) Current() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Active resolves the page to render. EVENT_DETAILS without a selection
// renders HOME.
func (n *Navigator) Active() models.Page {
	st := n.Current()
	switch {
	case st.Page == models.PageEventDetails && st.SelectedEventID == "":
		return models.PageHome
	case !st.Page.Valid():
		return models.PageHome
	}
	return st.Page
}
