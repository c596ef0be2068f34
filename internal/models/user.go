package models

import "time"

// UserModel represents a registered author.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email"`
	Password string `json:"-"        gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a revocable login session. Both the web cookie token and
// API token pairs are bound to a session row.
type UserSession struct {
	Base
	UserID    string     `json:"-"          gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:varchar(512)"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
