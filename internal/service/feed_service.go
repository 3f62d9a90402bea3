package service

import (
	"errors"
	"fmt"

	"medical-transport-backend/internal/models"
	"medical-transport-backend/internal/repository"

	"gorm.io/gorm"
)

type FeedService struct {
	feedRepo  *repository.FeedRepository
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewFeedService(
	feedRepo *repository.FeedRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
) *FeedService {
	return &FeedService{
		feedRepo:  feedRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// FeedInput carries the patient fields of a new intake record
type FeedInput struct {
	TargetHospital string
	PatientName    string
	AgeOrMonth     string
	BloodType      string
	Injury         string
	DiseaseFlag    string
	SurgeryFlag    string
}

// ListForUser returns the feeds targeted at the caller's affiliated
// hospital, paged. Any authenticated user sees their affiliation's feeds
// regardless of role.
func (s *FeedService) ListForUser(username string, page, limit int) ([]models.Feed, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.feedRepo.ListByHospital(user.Affiliation, page, limit)
}

// Create inserts a new intake record. The approval state always starts at
// "wait" and the submitter phone is taken from the caller's stored phone,
// not from the request.
func (s *FeedService) Create(username string, input FeedInput) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	feed := &models.Feed{
		SubmitterPhone: user.Phone,
		TargetHospital: input.TargetHospital,
		PatientName:    input.PatientName,
		AgeOrMonth:     input.AgeOrMonth,
		BloodType:      input.BloodType,
		Injury:         input.Injury,
		DiseaseFlag:    input.DiseaseFlag,
		SurgeryFlag:    input.SurgeryFlag,
		ApprovalState:  models.FeedStateWait,
	}

	if err := s.feedRepo.Create(feed); err != nil {
		return fmt.Errorf("failed to create feed: %w", err)
	}

	details := fmt.Sprintf("Feed %d submitted for hospital %s", feed.ID, feed.TargetHospital)
	_ = s.auditRepo.CreateAuditLog(&user.ID, "feed_create", details)

	return nil
}

// UpdateState overwrites a feed's approval state. Updating a nonexistent
// feed id fails with ErrFeedNotFound instead of silently succeeding. No
// affiliation check is made: any authenticated user may update any feed.
func (s *FeedService) UpdateState(username string, feedID uint, state string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	feed, err := s.feedRepo.FindByID(feedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedNotFound
		}
		return err
	}

	if err := s.feedRepo.UpdateState(feed.ID, state); err != nil {
		return fmt.Errorf("failed to update feed state: %w", err)
	}

	details := fmt.Sprintf("Feed %d state set to %s", feed.ID, state)
	_ = s.auditRepo.CreateAuditLog(&user.ID, "feed_state_update", details)

	return nil
}
