package comment

import (
	"testing"
	"time"

	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPost(t *testing.T, db *gorm.DB) (*models.UserModel, *models.PostModel) {
	t.Helper()
	author := models.UserModel{Username: "post-owner", Password: "x"}
	require.NoError(t, db.Create(&author).Error)
	post := models.PostModel{Title: "commented", Text: "b", AuthorID: author.ID}
	require.NoError(t, db.Create(&post).Error)
	return &author, &post
}

func TestCreateRequiresExistingPost(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	author, _ := seedPost(t, db)

	_, err := svc.Create(author.ID, "no-such-post", &CreateCommentDTO{Text: "hi"})
	assert.ErrorIs(t, err, ErrPostMissing)
}

func TestCreateRequiresActor(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	_, post := seedPost(t, db)

	_, err := svc.Create("", post.ID, &CreateCommentDTO{Text: "hi"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListByPostNewestFirst(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	author, post := seedPost(t, db)

	first, err := svc.Create(author.ID, post.ID, &CreateCommentDTO{Text: "first"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := svc.Create(author.ID, post.ID, &CreateCommentDTO{Text: "second"})
	require.NoError(t, err)

	comments, err := svc.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
	require.NotNil(t, comments[0].Author)
	assert.Equal(t, author.Username, comments[0].Author.Username)
}

func TestUpdateAndDeleteAreAuthorOnly(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	author, post := seedPost(t, db)

	other := models.UserModel{Username: "other-user", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	comment, err := svc.Create(author.ID, post.ID, &CreateCommentDTO{Text: "original"})
	require.NoError(t, err)

	_, err = svc.Update(other.ID, comment.ID, &UpdateCommentDTO{Text: "hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(other.ID, comment.ID), ErrForbidden)

	updated, err := svc.Update(author.ID, comment.ID, &UpdateCommentDTO{Text: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", updated.Text)

	require.NoError(t, svc.Delete(author.ID, comment.ID))
	gone, err := svc.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteMissingComment(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	author, _ := seedPost(t, db)

	assert.ErrorIs(t, svc.Delete(author.ID, "no-such-comment"), gorm.ErrRecordNotFound)
}
