// Package catalog provides the users and events a session starts with.
// A catalog comes from the built-in demo data, a YAML file, or a
// read-only repository, and is checked by Validate before it seeds a
// store.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/event-ticketing/internal/models"
	"github.com/Eursukkul/event-ticketing/internal/store"
)

type Catalog struct {
	Users  []models.User
	Events []models.Event
}

type Repository interface {
	FindUsers(ctx context.Context) ([]models.User, error)
	FindEvents(ctx context.Context) ([]models.Event, error)
}

func FromRepository(ctx context.Context, repo Repository) (Catalog, error) {
	users, err := repo.FindUsers(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load users: %w", err)
	}
	events, err := repo.FindEvents(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load events: %w", err)
	}
	return Catalog{Users: users, Events: events}, nil
}

// Validate applies the store's seed rules, so a catalog that passes can
// always seed a store.
func (c Catalog) Validate() error {
	if err := store.ValidateSeed(c.Users, c.Events); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

func daysFrom(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, days)
}
