package view

import (
	"fmt"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

type UserOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type NavLink struct {
	Page   models.Page `json:"page"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}

type Header struct {
	CurrentUser models.User  `json:"currentUser"`
	Users       []UserOption `json:"users"`
	Links       []NavLink    `json:"links"`
	ActivePage  models.Page  `json:"activePage"`
}

// NewHeader builds the header for the active page. Events is always
// linked; the dashboard link depends on the current role.
func NewHeader(src Source, active models.Page) Header {
	user := src.CurrentUser()
	users := src.Users()

	h := Header{
		CurrentUser: user,
		Users:       make([]UserOption, 0, len(users)),
		ActivePage:  active,
	}
	for _, u := range users {
		h.Users = append(h.Users, UserOption{
			ID:       u.ID,
			Label:    fmt.Sprintf("%s (%s)", u.Name, u.Role),
			Selected: u.ID == user.ID,
		})
	}

	h.Links = append(h.Links, NavLink{Page: models.PageHome, Label: "Events"})
	switch user.Role {
	case models.RoleAttendee:
		h.Links = append(h.Links, NavLink{Page: models.PageUserDashboard, Label: "My Tickets"})
	case models.RoleOrganizer:
		h.Links = append(h.Links, NavLink{Page: models.PageOrganizerDashboard, Label: "Organizer Dashboard"})
	}
	for i := range h.Links {
		h.Links[i].Active = h.Links[i].Page == active
	}
	return h
}
