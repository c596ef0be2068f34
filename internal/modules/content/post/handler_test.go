package post

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/models"
	sessionpkg "github.com/hoshgeldi/core/internal/pkg/session"
	"github.com/hoshgeldi/core/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func apiRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(db)).RegisterRoutes(api, middleware.Auth(db))
	return r
}

func loginToken(t *testing.T, db *gorm.DB, username string) (string, *models.UserModel) {
	t.Helper()
	u := models.UserModel{Username: username, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	token, _, err := sessionpkg.Issue(db, u.ID, "", "", time.Hour)
	require.NoError(t, err)
	return token, &u
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	db := testdb.Open(t)
	r := apiRouter(db)
	token, _ := loginToken(t, db, "http-author")

	w := doJSON(r, "POST", "/api/posts", token, `{"title":"hi","text":"body","tags":["web"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.PostModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(r, "GET", "/api/posts/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "PATCH", "/api/posts/"+created.ID, token, `{"title":"hi again"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hi again")

	w = doJSON(r, "DELETE", "/api/posts/"+created.ID, token, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, "GET", "/api/posts/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutationsRequireAuth(t *testing.T) {
	db := testdb.Open(t)
	r := apiRouter(db)

	w := doJSON(r, "POST", "/api/posts", "", `{"title":"hi","text":"body"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "DELETE", "/api/posts/some-id", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForeignPostMutationsReturn403(t *testing.T) {
	db := testdb.Open(t)
	r := apiRouter(db)
	ownerToken, _ := loginToken(t, db, "http-owner")
	strangerToken, _ := loginToken(t, db, "http-stranger")

	w := doJSON(r, "POST", "/api/posts", ownerToken, `{"title":"mine","text":"body"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.PostModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, "PATCH", "/api/posts/"+created.ID, strangerToken, `{"title":"stolen"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "DELETE", "/api/posts/"+created.ID, strangerToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListEnvelopeAndFilters(t *testing.T) {
	db := testdb.Open(t)
	r := apiRouter(db)
	token, _ := loginToken(t, db, "http-lister")

	for _, title := range []string{"alpha post", "beta post"} {
		w := doJSON(r, "POST", "/api/posts", token, `{"title":"`+title+`","text":"body"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, "GET", "/api/posts?search=ALPHA", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data       []models.PostModel `json:"data"`
		Pagination struct {
			Total       int64 `json:"total"`
			CurrentPage int   `json:"current_page"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "alpha post", envelope.Data[0].Title)
	assert.Equal(t, int64(1), envelope.Pagination.Total)
	assert.Equal(t, 1, envelope.Pagination.CurrentPage)
}
