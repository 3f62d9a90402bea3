package repository

import (
	"medical-transport-backend/internal/models"

	"gorm.io/gorm"
)

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepo(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// FindByID finds a feed by primary key
func (r *FeedRepository) FindByID(id uint) (*models.Feed, error) {
	var feed models.Feed
	err := r.db.First(&feed, id).Error
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

// Create creates a new feed
func (r *FeedRepository) Create(feed *models.Feed) error {
	return r.db.Create(feed).Error
}

// UpdateState overwrites a feed's approval state
func (r *FeedRepository) UpdateState(id uint, state string) error {
	return r.db.Model(&models.Feed{}).
		Where("id = ?", id).
		Update("approval_state", state).Error
}

// ListByHospital returns feeds targeted at the given hospital, in storage
// order. Pagination is offset-based; page and limit are applied as sent.
func (r *FeedRepository) ListByHospital(hospital string, page, limit int) ([]models.Feed, error) {
	var feeds []models.Feed
	err := r.db.Where("target_hospital = ?", hospital).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&feeds).Error
	return feeds, err
}
