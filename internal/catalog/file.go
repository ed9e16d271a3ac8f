package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/models"
	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Users  []fileUser  `yaml:"users"`
	Events []fileEvent `yaml:"events"`
}

type fileUser struct {
	ID    string      `yaml:"id"`
	Name  string      `yaml:"name"`
	Email string      `yaml:"email"`
	Role  models.Role `yaml:"role"`
}

// fileEvent takes either an absolute date or a day offset from load
// time, so a demo catalog never goes stale.
type fileEvent struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title"`
	Description  string    `yaml:"description"`
	ImageURL     string    `yaml:"image_url"`
	Date         time.Time `yaml:"date"`
	DaysFromNow  int       `yaml:"days_from_now"`
	Location     string    `yaml:"location"`
	Price        float64   `yaml:"price"`
	TotalTickets int       `yaml:"total_tickets"`
	TicketsSold  int       `yaml:"tickets_sold"`
	OrganizerID  string    `yaml:"organizer_id"`
}

// LoadFile reads a YAML catalog. The result is not validated.
func LoadFile(path string, now time.Time) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, now)
}

func Parse(data []byte, now time.Time) (Catalog, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c := Catalog{
		Users:  make([]models.User, 0, len(raw.Users)),
		Events: make([]models.Event, 0, len(raw.Events)),
	}
	for _, u := range raw.Users {
		c.Users = append(c.Users, models.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	for _, e := range raw.Events {
		date := e.Date
		if date.IsZero() {
			date = daysFrom(now, e.DaysFromNow)
		}
		c.Events = append(c.Events, models.Event{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			ImageURL:     e.ImageURL,
			Date:         date.UTC(),
			Location:     e.Location,
			Price:        e.Price,
			TotalTickets: e.TotalTickets,
			TicketsSold:  e.TicketsSold,
			OrganizerID:  e.OrganizerID,
		})
	}
	return c, nil
}
