package repository

import (
	"medical-transport-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by primary key
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdateFields overwrites the given columns on the user row.
// A map is used so empty strings still overwrite stored values.
func (r *UserRepository) UpdateFields(username string, fields map[string]interface{}) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Updates(fields).Error
}

// SetSessionToken stores the last-issued access token on the user row
func (r *UserRepository) SetSessionToken(username, token string) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("session_token", token).Error
}

// ClearSessionToken nulls out the stored access token on logout
func (r *UserRepository) ClearSessionToken(username string) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("session_token", nil).Error
}
