package auth

import (
	"errors"
	"time"

	"github.com/hoshgeldi/core/internal/models"
	sessionpkg "github.com/hoshgeldi/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) DB() *gorm.DB { return s.db }

// Login verifies credentials and issues a web session token.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserModel, error) {
	u, err := s.verify(username, password)
	if err != nil {
		return "", nil, err
	}
	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	return token, u, err
}

// IssueTokenPair verifies credentials and returns an access/refresh pair
// for API clients.
func (s *Service) IssueTokenPair(username, password, ip, ua string) (*sessionpkg.TokenPair, error) {
	u, err := s.verify(username, password)
	if err != nil {
		return nil, err
	}
	return sessionpkg.IssuePair(s.db, u.ID, ip, ua)
}

// Refresh exchanges a refresh token for a fresh access token.
func (s *Service) Refresh(refreshToken string) (string, error) {
	access, err := sessionpkg.Refresh(s.db, refreshToken)
	if err != nil {
		return "", errInvalidRefresh
	}
	return access, nil
}

// Register creates a new user. Usernames are unique; the caller is signed
// in right away (the web handler issues the session).
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("username = ?", dto.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{Username: dto.Username, Email: dto.Email, Password: string(hash)}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(userID, sessionID string) error {
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *Service) verify(username, password string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(time.Second)
			return nil, errUserNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(time.Second)
		return nil, errWrongPassword
	}
	return &u, nil
}
