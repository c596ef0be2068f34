package models

// CategoryModel is shared reference data: each post belongs to at most one
// category. Mutable only through the admin API path.
type CategoryModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`

	Posts []PostModel `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }

// TagModel is shared reference data with a many-to-many relation to posts.
type TagModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`

	Posts []PostModel `json:"posts,omitempty" gorm:"many2many:post_tags;joinForeignKey:TagID;joinReferences:PostID"`
}

func (TagModel) TableName() string { return "tags" }
