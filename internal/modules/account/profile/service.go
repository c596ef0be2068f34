package profile

import (
	"errors"

	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/policy"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateProfileDTO struct {
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}

var ErrForbidden = errors.New("profile belongs to another user")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetOrCreate returns the user's profile, creating the row on first
// access. Concurrent first accesses race on the unique user_id index; the
// conflict clause makes the insert a no-op for losers, and the re-read
// returns the single surviving row to every caller.
func (s *Service) GetOrCreate(userID string) (*models.ProfileModel, error) {
	fresh := models.ProfileModel{UserID: userID}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error
	if err != nil {
		return nil, err
	}

	var profile models.ProfileModel
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns actorID's own profile. Profiles are owner-visible only.
func (s *Service) Get(actorID, userID string) (*models.ProfileModel, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actorID, policy.ActionRead, profile) {
		return nil, ErrForbidden
	}
	return profile, nil
}

// Update patches the profile. Only the owner may edit.
func (s *Service) Update(actorID, userID string, dto *UpdateProfileDTO) (*models.ProfileModel, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actorID, policy.ActionEdit, profile) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
	}
	if dto.Bio != nil {
		updates["bio"] = *dto.Bio
	}
	if len(updates) == 0 {
		return profile, nil
	}
	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
