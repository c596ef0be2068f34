package models

// ProfileModel holds per-user profile data. Exactly one row per user; the
// row is created lazily on first access (see profile.Service.GetOrCreate).
type ProfileModel struct {
	Base
	UserID string     `json:"user_id" gorm:"uniqueIndex;not null"`
	User   *UserModel `json:"-"       gorm:"foreignKey:UserID"`
	Avatar string     `json:"avatar"`
	Bio    string     `json:"bio"     gorm:"type:text"`
}

func (ProfileModel) TableName() string { return "profiles" }

// OwnedBy reports the owning user for access policy checks.
func (p ProfileModel) OwnedBy() string { return p.UserID }

// ReadRestricted marks profiles as visible to their owner only.
func (ProfileModel) ReadRestricted() bool { return true }
