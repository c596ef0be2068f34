package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/modules/account/auth"
	"github.com/hoshgeldi/core/internal/modules/account/profile"
	"github.com/hoshgeldi/core/internal/modules/account/user"
	"github.com/hoshgeldi/core/internal/modules/content/category"
	"github.com/hoshgeldi/core/internal/modules/content/comment"
	"github.com/hoshgeldi/core/internal/modules/content/post"
	"github.com/hoshgeldi/core/internal/modules/content/tag"
	"github.com/hoshgeldi/core/internal/pkg/flash"
	pkgredis "github.com/hoshgeldi/core/internal/pkg/redis"
	"github.com/hoshgeldi/core/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func webRouter(t *testing.T, db *gorm.DB, store *flash.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	postSvc := post.NewService(db)
	NewHandler(db, store, Services{
		Post:     postSvc,
		Comment:  comment.NewService(db),
		Category: category.NewService(db),
		Tag:      tag.NewService(db),
		Profile:  profile.NewService(db),
		Auth:     auth.NewService(db),
		User:     user.NewService(db, postSvc),
	}).RegisterRoutes(r)
	return r
}

func flashFixture(t *testing.T) (*flash.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rc, err := pkgredis.Connect("redis://" + mr.Addr())
	require.NoError(t, err)
	return flash.NewStore(rc), mr
}

func seedPosts(t *testing.T, db *gorm.DB, titles ...string) {
	t.Helper()
	u := models.UserModel{Username: "web-author", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	svc := post.NewService(db)
	for _, title := range titles {
		_, err := svc.Create(u.ID, &post.CreatePostDTO{Title: title, Text: "body"})
		require.NoError(t, err)
	}
}

// queuedFlashes reads back what index left in Redis for the browser
// cookie it set on the response.
func queuedFlashes(t *testing.T, mr *miniredis.Miniredis, w *httptest.ResponseRecorder) []flash.Message {
	t.Helper()
	var id string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "hg_flash" {
			id = ck.Value
		}
	}
	if id == "" {
		return nil
	}
	raw, err := mr.List("hg:flash:" + id)
	require.NoError(t, err)
	msgs := make([]flash.Message, 0, len(raw))
	for _, item := range raw {
		var m flash.Message
		require.NoError(t, json.Unmarshal([]byte(item), &m))
		msgs = append(msgs, m)
	}
	return msgs
}

func TestIndexFiltersByQueryParam(t *testing.T) {
	db := testdb.Open(t)
	store, _ := flashFixture(t)
	seedPosts(t, db, "alpha unique", "beta other")
	r := webRouter(t, db, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?q=ALPHA", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "alpha unique")
	assert.NotContains(t, body, "beta other")
}

func TestIndexFlashesSearchResultCount(t *testing.T) {
	db := testdb.Open(t)
	store, mr := flashFixture(t)
	seedPosts(t, db, "alpha unique", "beta other")
	r := webRouter(t, db, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?q=alpha", nil))
	require.Equal(t, http.StatusOK, w.Code)

	msgs := queuedFlashes(t, mr, w)
	require.Len(t, msgs, 1)
	assert.Equal(t, flash.Success, msgs[0].Level)
	assert.Equal(t, "Found 1 matching post.", msgs[0].Text)
}

func TestIndexFlashesWhenNothingMatches(t *testing.T) {
	db := testdb.Open(t)
	store, mr := flashFixture(t)
	seedPosts(t, db, "alpha unique")
	r := webRouter(t, db, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?q=zzz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	msgs := queuedFlashes(t, mr, w)
	require.Len(t, msgs, 1)
	assert.Equal(t, flash.Info, msgs[0].Level)
	assert.Equal(t, "No posts matched your search.", msgs[0].Text)
}

func TestIndexWithoutQueryFlashesNothing(t *testing.T) {
	db := testdb.Open(t)
	store, mr := flashFixture(t)
	seedPosts(t, db, "alpha unique")
	r := webRouter(t, db, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, queuedFlashes(t, mr, w))
}
