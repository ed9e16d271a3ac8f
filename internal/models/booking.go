package models

import "time"

type Booking struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	UserID      string    `json:"userId"`
	BookingDate time.Time `json:"bookingDate"`
}

// Attendee pairs a booking with the user who made it.
type Attendee struct {
	User    User    `json:"user"`
	Booking Booking `json:"booking"`
}
