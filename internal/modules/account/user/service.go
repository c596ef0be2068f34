package user

import (
	"errors"

	"github.com/hoshgeldi/core/internal/models"
	postmod "github.com/hoshgeldi/core/internal/modules/content/post"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UpdateUserDTO struct {
	Email    *string `json:"email"    binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

var ErrNotFound = errors.New("user not found")

type Service struct {
	db      *gorm.DB
	postSvc *postmod.Service
}

func NewService(db *gorm.DB, postSvc *postmod.Service) *Service {
	return &Service{db: db, postSvc: postSvc}
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Update(userID string, dto *UpdateUserDTO) (*models.UserModel, error) {
	u, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if dto.Email != nil {
		updates["email"] = *dto.Email
	}
	if dto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return u, nil
	}
	return u, s.db.Model(u).Updates(updates).Error
}

// Delete removes the account and everything hanging off it. Each dependent
// set goes in an explicit order inside one transaction: the user's posts
// with their comments and tag links, the user's comments elsewhere, the
// profile, all sessions, then the user row.
func (s *Service) Delete(userID string) error {
	u, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.postSvc.DeleteByAuthor(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", userID).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ProfileModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.UserModel{}, "id = ?", userID).Error
	})
}
