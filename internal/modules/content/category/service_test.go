package category

import (
	"testing"

	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGeneratesSlug(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Go Programming"})
	require.NoError(t, err)
	assert.Equal(t, "go-programming", cat.Slug)

	bySlug, err := svc.GetBySlug("go-programming")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, cat.ID, bySlug.ID)
}

func TestCreateRejectsDuplicates(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	_, err := svc.Create(&CreateCategoryDTO{Name: "News"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateCategoryDTO{Name: "News"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Create(&CreateCategoryDTO{Name: "Other", Slug: "news"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGetBySlugMissingReturnsNil(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	cat, err := svc.GetBySlug("nope")
	require.NoError(t, err)
	assert.Nil(t, cat)
}

func TestListSortsByName(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	_, err := svc.Create(&CreateCategoryDTO{Name: "zeta"})
	require.NoError(t, err)
	_, err = svc.Create(&CreateCategoryDTO{Name: "alpha"})
	require.NoError(t, err)

	cats, err := svc.List()
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "alpha", cats[0].Name)
	assert.Equal(t, "zeta", cats[1].Name)
}

func TestDeleteClearsPostCategory(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	author := models.UserModel{Username: "cat-author", Password: "x"}
	require.NoError(t, db.Create(&author).Error)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Doomed"})
	require.NoError(t, err)

	post := models.PostModel{Title: "survivor", Text: "b", AuthorID: author.ID, CategoryID: &cat.ID}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, svc.Delete(cat.ID))

	var reloaded models.PostModel
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Nil(t, reloaded.CategoryID)

	gone, err := svc.GetByID(cat.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
