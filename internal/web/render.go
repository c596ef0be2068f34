package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/models"
	"github.com/hoshgeldi/core/internal/pkg/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

func mustTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"markdown": markdown.Render,
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}).ParseFS(templateFS, "templates/*.html"))
}

// render fills in the ambient page context (signed-in user, flash
// messages) and writes the template.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = h.flash.Consume(c)
	data["IsAuthenticated"] = middleware.IsAuthenticated(c)
	if _, ok := data["Search"]; !ok {
		data["Search"] = ""
	}

	if userID := middleware.CurrentUserID(c); userID != "" {
		var u models.UserModel
		if err := h.db.Select("id, username").First(&u, "id = ?", userID).Error; err == nil {
			data["CurrentUser"] = u
		}
	}
	c.HTML(status, name, data)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{"Error": err.Error()})
}
