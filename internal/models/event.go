package models

import "time"

type Event struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Date         time.Time `gorm:"not null" json:"date"`
	Location     string    `json:"location"`
	Price        float64   `gorm:"not null" json:"price"`
	TotalTickets int       `gorm:"not null" json:"totalTickets"`
	TicketsSold  int       `gorm:"not null;default:0" json:"ticketsSold"`
	OrganizerID  string    `gorm:"not null" json:"organizerId"`
}

// TicketsLeft never goes below zero, even for a seed that oversold.
func (e Event) TicketsLeft() int {
	if left := e.TotalTickets - e.TicketsSold; left > 0 {
		return left
	}
	return 0
}

func (e Event) SoldOut() bool {
	return e.TicketsSold >= e.TotalTickets
}

// EventDraft is the organizer-supplied part of a new Event. The store
// fills in ID, OrganizerID and TicketsSold.
type EventDraft struct {
	Title        string
	Description  string
	ImageURL     string
	Date         time.Time
	Location     string
	Price        float64
	TotalTickets int
}
