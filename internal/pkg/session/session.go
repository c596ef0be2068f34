package session

import (
	"strings"
	"time"

	"github.com/hoshgeldi/core/internal/models"
	jwtpkg "github.com/hoshgeldi/core/internal/pkg/jwt"
	"gorm.io/gorm"
)

const (
	// DefaultTTL bounds web cookie sessions.
	DefaultTTL = 30 * 24 * time.Hour
	// AccessTTL is the lifetime of API access tokens.
	AccessTTL = 15 * time.Minute
	// RefreshTTL is the lifetime of API refresh tokens and their session.
	RefreshTTL = 7 * 24 * time.Hour
)

// TokenPair is the API authentication handshake result.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Issue creates a DB session and signs an access JWT bound to it.
func Issue(db *gorm.DB, userID, ip, ua string, ttl time.Duration) (string, *models.UserSession, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s, err := create(db, userID, ip, ua, ttl)
	if err != nil {
		return "", nil, err
	}

	token, err := jwtpkg.SignWithOptions(userID, ttl, jwtpkg.SignOptions{
		SessionID: s.ID,
		TokenType: jwtpkg.TypeAccess,
	})
	if err != nil {
		_ = db.Delete(s).Error
		return "", nil, err
	}
	return token, s, nil
}

// IssuePair creates a DB session and signs a short-lived access token plus
// a refresh token, both bound to the same session row.
func IssuePair(db *gorm.DB, userID, ip, ua string) (*TokenPair, error) {
	s, err := create(db, userID, ip, ua, RefreshTTL)
	if err != nil {
		return nil, err
	}

	access, err := jwtpkg.SignWithOptions(userID, AccessTTL, jwtpkg.SignOptions{
		SessionID: s.ID,
		TokenType: jwtpkg.TypeAccess,
	})
	if err != nil {
		_ = db.Delete(s).Error
		return nil, err
	}
	refresh, err := jwtpkg.SignWithOptions(userID, RefreshTTL, jwtpkg.SignOptions{
		SessionID: s.ID,
		TokenType: jwtpkg.TypeRefresh,
	})
	if err != nil {
		_ = db.Delete(s).Error
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func Refresh(db *gorm.DB, refreshToken string) (string, error) {
	claims, err := jwtpkg.Parse(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != jwtpkg.TypeRefresh {
		return "", gorm.ErrRecordNotFound
	}
	active, err := IsActive(db, claims.UserID, claims.SessionID)
	if err != nil {
		return "", err
	}
	if !active {
		return "", gorm.ErrRecordNotFound
	}
	return jwtpkg.SignWithOptions(claims.UserID, AccessTTL, jwtpkg.SignOptions{
		SessionID: claims.SessionID,
		TokenType: jwtpkg.TypeAccess,
	})
}

func create(db *gorm.DB, userID, ip, ua string, ttl time.Duration) (*models.UserSession, error) {
	s := &models.UserSession{
		UserID:    userID,
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// IsActive reports whether the session exists, is unrevoked and unexpired.
func IsActive(db *gorm.DB, userID, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, nil
	}

	var count int64
	err := db.Model(&models.UserSession{}).
		Where("id = ? AND user_id = ? AND revoked_at IS NULL AND expires_at > ?", sessionID, userID, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Revoke marks a session as revoked; its tokens stop validating.
func Revoke(db *gorm.DB, userID, sessionID string) error {
	now := time.Now()
	res := db.Model(&models.UserSession{}).
		Where("id = ? AND user_id = ? AND revoked_at IS NULL", sessionID, userID).
		Update("revoked_at", &now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeExpired hard-deletes sessions past their expiry. Run from the cron
// scheduler; keeps the table from growing without bound.
func PurgeExpired(db *gorm.DB) (int64, error) {
	res := db.Where("expires_at <= ? OR revoked_at IS NOT NULL", time.Now().Add(-24*time.Hour)).
		Delete(&models.UserSession{})
	return res.RowsAffected, res.Error
}
