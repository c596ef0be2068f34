package models

// CommentModel is a comment on a post. Comments are hard-deleted together
// with their post and are displayed newest-first.
type CommentModel struct {
	Base
	PostID   string     `json:"post_id"   gorm:"index;not null"`
	Post     *PostModel `json:"-"         gorm:"foreignKey:PostID"`
	AuthorID string     `json:"author_id" gorm:"index;not null"`
	Author   *UserModel `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Text     string     `json:"text"      gorm:"type:text;not null"`
}

func (CommentModel) TableName() string { return "comments" }

// OwnedBy reports the owning user for access policy checks.
func (c CommentModel) OwnedBy() string { return c.AuthorID }
