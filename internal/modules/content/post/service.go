package post

import (
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/pagination"
	"github.com/hoshgeldi/core/internal/pkg/policy"
	"github.com/hoshgeldi/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles post business logic. Mutations take the acting user ID
// explicitly; the service never reaches back into request state.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a page of posts, newest first. Editing a post refreshes its
// created_at, so recently edited posts surface at the top.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("posts.created_at DESC")

	if term := strings.TrimSpace(lq.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(text) LIKE ?", pattern, pattern)
	}
	if lq.Category != "" {
		tx = tx.Where("category_id IN (SELECT id FROM categories WHERE slug = ?)", lq.Category)
	}
	if lq.Tag != "" {
		tx = tx.Where("posts.id IN (SELECT post_id FROM post_tags WHERE tag_id IN (SELECT id FROM tags WHERE slug = ?))", lq.Tag)
	}

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// ListByAuthor returns a page of one author's posts, newest first.
func (s *Service) ListByAuthor(authorID string, q pagination.Query) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Category").
		Preload("Tags").
		Where("author_id = ?", authorID).
		Order("created_at DESC")

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetByID fetches a single post with its relations.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.Preload("Author").Preload("Category").Preload("Tags").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post owned by actorID, then binds tags in a second
// step. The post row is committed before tag binding starts; tags that fail
// to resolve are skipped rather than rolling back the post.
func (s *Service) Create(actorID string, dto *CreatePostDTO) (*models.PostModel, error) {
	if !policy.Can(actorID, policy.ActionCreate, models.PostModel{AuthorID: actorID}) {
		return nil, ErrForbidden
	}

	post := models.PostModel{
		Title:      dto.Title,
		Text:       dto.Text,
		AuthorID:   actorID,
		CategoryID: normalizeCategoryID(dto.CategoryID),
		Image:      dto.Image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	s.bindTags(&post, dto.Tags)
	return s.GetByID(post.ID)
}

// Update patches a post. Only the author may edit. The edit refreshes
// created_at so the post returns to the top of the feed.
func (s *Service) Update(actorID, id string, dto *UpdatePostDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return post, err
	}
	if !policy.Can(actorID, policy.ActionEdit, post) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{
		"created_at": time.Now(),
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Text != nil {
		updates["text"] = *dto.Text
	}
	if dto.CategoryID != nil {
		updates["category_id"] = normalizeCategoryID(dto.CategoryID)
	}
	if dto.Image != nil {
		updates["image"] = *dto.Image
	}
	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}

	if dto.Tags != nil {
		s.bindTags(post, dto.Tags)
	}
	return s.GetByID(id)
}

// Delete removes a post and its dependent rows. Only the author may delete.
// Comments and tag links are removed explicitly before the post row; the
// schema carries no cascade constraints.
func (s *Service) Delete(actorID, id string) error {
	post, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return gorm.ErrRecordNotFound
	}
	if !policy.Can(actorID, policy.ActionDelete, post) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PostModel{}, "id = ?", id).Error
	})
}

// DeleteByAuthor removes every post of one user, dependents included.
// Account deletion calls this inside its own transaction.
func (s *Service) DeleteByAuthor(tx *gorm.DB, authorID string) error {
	var ids []string
	if err := tx.Model(&models.PostModel{}).Where("author_id = ?", authorID).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("post_id IN ?", ids).Delete(&models.CommentModel{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM post_tags WHERE post_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Delete(&models.PostModel{}, "id IN ?", ids).Error
}

// bindTags resolves tag names to rows, creating missing ones, and replaces
// the post's tag set. Names that fail to resolve are skipped; the post
// keeps whatever subset resolved.
func (s *Service) bindTags(post *models.PostModel, names []string) {
	if names == nil {
		return
	}

	tags := make([]models.TagModel, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		tag, err := s.getOrCreateTag(name)
		if err != nil {
			continue
		}
		tags = append(tags, *tag)
	}

	_ = s.db.Model(post).Association("Tags").Replace(tags)
}

func (s *Service) getOrCreateTag(name string) (*models.TagModel, error) {
	tagSlug := slug.Make(name)

	var tag models.TagModel
	err := s.db.Where("slug = ?", tagSlug).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.TagModel{Name: name, Slug: tagSlug}
	if err := s.db.Create(&tag).Error; err != nil {
		// Lost a race with a concurrent insert; re-read the winner.
		var existing models.TagModel
		if reErr := s.db.Where("slug = ?", tagSlug).First(&existing).Error; reErr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &tag, nil
}

func normalizeCategoryID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
