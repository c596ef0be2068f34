// Package web serves the human-facing HTML pages. It reuses the same
// services as the JSON API; only the rendering and the flash/redirect
// conventions differ.
package web

import (
	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/modules/account/auth"
	"github.com/hoshgeldi/core/internal/modules/account/profile"
	"github.com/hoshgeldi/core/internal/modules/account/user"
	"github.com/hoshgeldi/core/internal/modules/content/category"
	"github.com/hoshgeldi/core/internal/modules/content/comment"
	"github.com/hoshgeldi/core/internal/modules/content/post"
	"github.com/hoshgeldi/core/internal/modules/content/tag"
	"github.com/hoshgeldi/core/internal/pkg/flash"
	"gorm.io/gorm"
)

type Handler struct {
	db          *gorm.DB
	flash       *flash.Store
	postSvc     *post.Service
	commentSvc  *comment.Service
	categorySvc *category.Service
	tagSvc      *tag.Service
	profileSvc  *profile.Service
	authSvc     *auth.Service
	userSvc     *user.Service
}

type Services struct {
	Post     *post.Service
	Comment  *comment.Service
	Category *category.Service
	Tag      *tag.Service
	Profile  *profile.Service
	Auth     *auth.Service
	User     *user.Service
}

func NewHandler(db *gorm.DB, flashStore *flash.Store, svcs Services) *Handler {
	return &Handler{
		db:          db,
		flash:       flashStore,
		postSvc:     svcs.Post,
		commentSvc:  svcs.Comment,
		categorySvc: svcs.Category,
		tagSvc:      svcs.Tag,
		profileSvc:  svcs.Profile,
		authSvc:     svcs.Auth,
		userSvc:     svcs.User,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(mustTemplates())

	pages := r.Group("", middleware.OptionalAuth(h.db))

	pages.GET("/", h.index)
	pages.GET("/post/:id", h.postDetail)
	pages.GET("/category/:slug", h.categoryPage)
	pages.GET("/tag/:slug", h.tagPage)

	pages.GET("/register", h.registerForm)
	pages.POST("/register", h.register)
	pages.GET("/login", h.loginForm)
	pages.POST("/login", h.login)
	pages.GET("/logout", h.logout)
	pages.POST("/logout", h.logout)

	authed := pages.Group("", h.requireLogin)
	authed.GET("/new", h.postForm)
	authed.POST("/new", h.postCreate)
	authed.GET("/post/:id/edit", h.postEditForm)
	authed.POST("/post/:id/edit", h.postEdit)
	authed.POST("/post/:id/delete", h.postDelete)
	authed.POST("/post/:id/comment", h.commentCreate)
	authed.GET("/comment/:id/edit", h.commentEditForm)
	authed.POST("/comment/:id/edit", h.commentEdit)
	authed.POST("/comment/:id/delete", h.commentDelete)
	authed.GET("/my_posts", h.myPosts)
	authed.GET("/profile", h.profilePage)
	authed.GET("/profile/edit", h.profileEditForm)
	authed.POST("/profile/edit", h.profileEdit)
	authed.GET("/account/delete", h.accountDeleteForm)
	authed.POST("/account/delete", h.accountDelete)
}

// requireLogin redirects anonymous visitors to the login page with a flash
// instead of returning a JSON 401.
func (h *Handler) requireLogin(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		h.flash.Add(c, flash.Warning, "Please sign in first.")
		c.Redirect(302, "/login")
		c.Abort()
		return
	}
	c.Next()
}
