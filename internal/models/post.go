package models

// PostModel is a blog post. CreatedAt orders listings; editing a post
// refreshes it, so edited posts return to the top of the feed.
type PostModel struct {
	Base
	Title      string         `json:"title"       gorm:"not null"`
	Text       string         `json:"text"        gorm:"type:longtext;not null"`
	AuthorID   string         `json:"author_id"   gorm:"index;not null"`
	Author     *UserModel     `json:"author,omitempty"   gorm:"foreignKey:AuthorID"`
	CategoryID *string        `json:"category_id" gorm:"index"`
	Category   *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags       []TagModel     `json:"tags,omitempty"     gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
	Image      string         `json:"image"`

	Comments []CommentModel `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

func (PostModel) TableName() string { return "posts" }

// OwnedBy reports the owning user for access policy checks.
func (p PostModel) OwnedBy() string { return p.AuthorID }
