package comment

import (
	"errors"

	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/policy"
	"gorm.io/gorm"
)

type CreateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

var (
	ErrForbidden   = errors.New("comment does not belong to the acting user")
	ErrPostMissing = errors.New("post does not exist")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListByPost returns all comments of a post, newest first.
func (s *Service) ListByPost(postID string) ([]models.CommentModel, error) {
	var comments []models.CommentModel
	err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (s *Service) GetByID(id string) (*models.CommentModel, error) {
	var comment models.CommentModel
	if err := s.db.Preload("Author").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Create attaches a comment by actorID to a post. The post must exist;
// commenting requires a signed-in user.
func (s *Service) Create(actorID, postID string, dto *CreateCommentDTO) (*models.CommentModel, error) {
	if !policy.Can(actorID, policy.ActionCreate, models.CommentModel{AuthorID: actorID}) {
		return nil, ErrForbidden
	}

	var count int64
	if err := s.db.Model(&models.PostModel{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrPostMissing
	}

	comment := models.CommentModel{
		PostID:   postID,
		AuthorID: actorID,
		Text:     dto.Text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return s.GetByID(comment.ID)
}

// Update edits a comment's text. Only the author may edit.
func (s *Service) Update(actorID, id string, dto *UpdateCommentDTO) (*models.CommentModel, error) {
	comment, err := s.GetByID(id)
	if err != nil || comment == nil {
		return comment, err
	}
	if !policy.Can(actorID, policy.ActionEdit, comment) {
		return nil, ErrForbidden
	}
	if err := s.db.Model(comment).Update("text", dto.Text).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Only the author may delete.
func (s *Service) Delete(actorID, id string) error {
	comment, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return gorm.ErrRecordNotFound
	}
	if !policy.Can(actorID, policy.ActionDelete, comment) {
		return ErrForbidden
	}
	return s.db.Delete(&models.CommentModel{}, "id = ?", id).Error
}
