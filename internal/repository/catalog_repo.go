package repository

import (
	"context"

	"github.com/Eursukkul/event-ticketing/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository reads the seed catalog. Session state is never
// written back.
type CatalogRepository interface {
	FindUsers(ctx context.Context) ([]models.User, error)
	FindEvents(ctx context.Context) ([]models.Event, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// FindUsers orders by id so the initial identity is stable.
func (r *catalogRepository) FindUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *catalogRepository) FindEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
