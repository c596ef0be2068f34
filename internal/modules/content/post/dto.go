package post

import "errors"

// ListQuery narrows the post listing. All fields combine with AND.
type ListQuery struct {
	// Search matches a case-insensitive substring of title or body.
	Search string
	// Category scopes to posts in the category with this slug.
	Category string
	// Tag scopes to posts carrying the tag with this slug.
	Tag string
}

type CreatePostDTO struct {
	Title      string   `json:"title" binding:"required"`
	Text       string   `json:"text"  binding:"required"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
	Image      string   `json:"image"`
}

type UpdatePostDTO struct {
	Title      *string  `json:"title"`
	Text       *string  `json:"text"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
	Image      *string  `json:"image"`
}

var (
	ErrForbidden = errors.New("post does not belong to the acting user")
)
