package view

import (
	"encoding/json"
	"fmt"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

type Ticket struct {
	BookingID     string `json:"bookingId"`
	EventID       string `json:"eventId"`
	EventTitle    string `json:"eventTitle"`
	FormattedDate string `json:"formattedDate"`
	Location      string `json:"location"`
	HolderName    string `json:"holderName"`
	QRPayload     string `json:"qrPayload"`
}

type MyTicketsView struct {
	Tickets []Ticket `json:"tickets"`
	Message string   `json:"message,omitempty"`
}

type qrPayload struct {
	BookingID string `json:"bookingId"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	EventName string `json:"eventName"`
	UserName  string `json:"userName"`
}

// MyTickets lists the current user's bookings in booking order. Bookings
// whose event no longer exists are skipped.
func MyTickets(src Source) (MyTicketsView, error) {
	user := src.CurrentUser()
	byID := make(map[string]models.Event)
	for _, e := range src.Events() {
		byID[e.ID] = e
	}

	v := MyTicketsView{Tickets: []Ticket{}}
	for _, b := range src.Bookings() {
		if b.UserID != user.ID {
			continue
		}
		e, ok := byID[b.EventID]
		if !ok {
			continue
		}
		payload, err := QRPayload(b, e, user)
		if err != nil {
			return MyTicketsView{}, err
		}
		v.Tickets = append(v.Tickets, Ticket{
			BookingID:     b.ID,
			EventID:       e.ID,
			EventTitle:    e.Title,
			FormattedDate: e.Date.Format(ticketDateLayout),
			Location:      e.Location,
			HolderName:    user.Name,
			QRPayload:     payload,
		})
	}
	if len(v.Tickets) == 0 {
		v.Message = noTicketsMessage
	}
	return v, nil
}

// QRPayload is the string a ticket's QR code encodes.
func QRPayload(b models.Booking, e models.Event, u models.User) (string, error) {
	data, err := json.Marshal(qrPayload{
		BookingID: b.ID,
		EventID:   e.ID,
		UserID:    u.ID,
		EventName: e.Title,
		UserName:  u.Name,
	})
	if err != nil {
		return "", fmt.Errorf("encode qr payload: %w", err)
	}
	return string(data), nil
}
