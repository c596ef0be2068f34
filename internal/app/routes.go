package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/modules/account/auth"
	"github.com/hoshgeldi/core/internal/modules/account/profile"
	"github.com/hoshgeldi/core/internal/modules/account/user"
	"github.com/hoshgeldi/core/internal/modules/content/category"
	"github.com/hoshgeldi/core/internal/modules/content/comment"
	"github.com/hoshgeldi/core/internal/modules/content/post"
	"github.com/hoshgeldi/core/internal/modules/content/tag"
	"github.com/hoshgeldi/core/internal/modules/storage/file"
	"github.com/hoshgeldi/core/internal/pkg/flash"
	pkgredis "github.com/hoshgeldi/core/internal/pkg/redis"
	"github.com/hoshgeldi/core/internal/pkg/response"
	"github.com/hoshgeldi/core/internal/web"
)

func (a *App) registerRoutes(rc *pkgredis.Client) error {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			response.NotFound(c)
			return
		}
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Error": "page not found", "Search": ""})
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "hoshgeldi-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/hoshgeldi/core",
	}

	// Rate limiting runs on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))

	// Shared services. The HTML layer reuses the exact same instances, so
	// both surfaces enforce identical ownership and validation rules.
	postSvc := post.NewService(db)
	categorySvc := category.NewService(db)
	tagSvc := tag.NewService(db)
	commentSvc := comment.NewService(db)
	authSvc := auth.NewService(db)
	profileSvc := profile.NewService(db)
	userSvc := user.NewService(db, postSvc)
	fileSvc, err := file.NewService(a.cfg)
	if err != nil {
		return err
	}

	// Versioned API
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.Idempotence(rc.Raw()))
	if !a.cfg.IsDev() {
		api.Use(middleware.HTTPCache(rc.Raw(), 15*time.Second))
	}

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(a.startTime()).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	api.GET("/clean_cache", authMW, func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	})

	// Auth & account
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	profile.NewHandler(profileSvc).RegisterRoutes(api, authMW)
	user.NewHandler(userSvc).RegisterRoutes(api, authMW)

	// Content
	post.NewHandler(postSvc).RegisterRoutes(api, authMW)
	comment.NewHandler(commentSvc).RegisterRoutes(api, authMW)

	// Taxonomy
	category.NewHandler(categorySvc, postSvc).RegisterRoutes(api, authMW)
	tag.NewHandler(tagSvc, postSvc).RegisterRoutes(api, authMW)

	// Uploads
	file.NewHandler(fileSvc).RegisterRoutes(api, authMW)

	// HTML pages
	flashStore := flash.NewStore(rc)
	web.NewHandler(db, flashStore, web.Services{
		Post:     postSvc,
		Comment:  commentSvc,
		Category: categorySvc,
		Tag:      tagSvc,
		Profile:  profileSvc,
		Auth:     authSvc,
		User:     userSvc,
	}).RegisterRoutes(r)

	r.Static("/static", a.cfg.StaticDir())
	return nil
}
