package category

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/modules/content/post"
	"github.com/hoshgeldi/core/internal/pkg/pagination"
	"github.com/hoshgeldi/core/internal/pkg/response"
)

type Handler struct {
	svc     *Service
	postSvc *post.Service
}

func NewHandler(svc *Service, postSvc *post.Service) *Handler {
	return &Handler{svc: svc, postSvc: postSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cats := rg.Group("/categories")
	cats.GET("", h.list)
	cats.GET("/:slug", h.getBySlug)

	authed := cats.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:slug", h.update)
	authed.PATCH("/:slug", h.update)
	authed.DELETE("/:slug", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

// getBySlug returns the category together with a page of its posts.
func (h *Handler) getBySlug(c *gin.Context) {
	cat, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}

	posts, pag, err := h.postSvc.List(pagination.FromContext(c), post.ListQuery{Category: cat.Slug})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"category":   cat,
		"posts":      posts,
		"pagination": pag,
	})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	cat, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}

	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	updated, err := h.svc.Update(cat.ID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, updated)
}

func (h *Handler) delete(c *gin.Context) {
	cat, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	if err := h.svc.Delete(cat.ID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
