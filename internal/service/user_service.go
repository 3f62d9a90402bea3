package service

import (
	"errors"
	"fmt"

	"medical-transport-backend/internal/models"
	"medical-transport-backend/internal/repository"
	"medical-transport-backend/pkg/utils"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewUserService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// ProfileResponse is the user profile as exposed over the API.
// Password hash and session token are never included.
type ProfileResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Affiliation string `json:"affiliation"`
}

// Signup registers a new account. Usernames are unique; a taken username
// returns ErrUsernameTaken.
func (s *UserService) Signup(username, password, displayName, role, phone, affiliation string) error {
	_, err := s.userRepo.FindByUsername(username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		Role:         role,
		Phone:        phone,
		Affiliation:  affiliation,
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&user.ID, "user_signup", fmt.Sprintf("User %s signed up", username))

	return nil
}

// Login authenticates a user and returns a fresh access token. The token is
// also stored on the user row, overwriting whatever was issued before.
func (s *UserService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return "", ErrPasswordMismatch
	}

	accessToken, err := utils.GenerateAccessToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.userRepo.SetSessionToken(user.Username, accessToken); err != nil {
		return "", fmt.Errorf("failed to store access token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&user.ID, "user_login", fmt.Sprintf("User %s logged in", username))

	return accessToken, nil
}

// GetProfile returns the caller's profile without credential fields
func (s *UserService) GetProfile(username string) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &ProfileResponse{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		Phone:       user.Phone,
		Affiliation: user.Affiliation,
	}, nil
}

// UpdateProfile overwrites the caller's display name, phone and affiliation
// unconditionally. Fields absent from the request become empty.
func (s *UserService) UpdateProfile(username, displayName, phone, affiliation string) error {
	if _, err := s.userRepo.FindByUsername(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	fields := map[string]interface{}{
		"display_name": displayName,
		"phone":        phone,
		"affiliation":  affiliation,
	}

	if err := s.userRepo.UpdateFields(username, fields); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// Logout clears the stored token on the user row. Tokens already issued keep
// verifying until they expire; the stored value is not consulted on auth.
func (s *UserService) Logout(username string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.ClearSessionToken(username); err != nil {
		return fmt.Errorf("failed to clear access token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&user.ID, "user_logout", fmt.Sprintf("User %s logged out", username))

	return nil
}
