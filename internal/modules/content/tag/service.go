package tag

import (
	"errors"
	"strings"

	gslug "github.com/gosimple/slug"
	"github.com/hoshgeldi/core/internal/models"
	"gorm.io/gorm"
)

type CreateTagDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

type UpdateTagDTO struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

var ErrDuplicate = errors.New("tag name or slug already exists")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.TagModel, error) {
	var tags []models.TagModel
	return tags, s.db.Order("name ASC").Find(&tags).Error
}

func (s *Service) GetBySlug(slug string) (*models.TagModel, error) {
	var tag models.TagModel
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *Service) Create(dto *CreateTagDTO) (*models.TagModel, error) {
	tagSlug := strings.TrimSpace(dto.Slug)
	if tagSlug == "" {
		tagSlug = gslug.Make(dto.Name)
	}

	var count int64
	s.db.Model(&models.TagModel{}).Where("slug = ? OR name = ?", tagSlug, dto.Name).Count(&count)
	if count > 0 {
		return nil, ErrDuplicate
	}

	tag := models.TagModel{Name: dto.Name, Slug: tagSlug}
	return &tag, s.db.Create(&tag).Error
}

func (s *Service) Update(id string, dto *UpdateTagDTO) (*models.TagModel, error) {
	var tag models.TagModel
	if err := s.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	return &tag, s.db.Model(&tag).Updates(updates).Error
}

// Delete removes a tag and its post links. Posts themselves are untouched.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TagModel{}, "id = ?", id).Error
	})
}
