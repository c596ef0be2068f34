package tag

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
	tags := rg.Group("/tags")
	tags.GET("", h.list)
	tags.GET("/:slug", h.getBySlug)

	authed := tags.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:slug", h.update)
	authed.PATCH("/:slug", h.update)
	authed.DELETE("/:slug", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	tags, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tags)
}

// getBySlug returns the tag together with a page of posts carrying it.
func (h *Handler) getBySlug(c *gin.Context) {
	tag, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if tag == nil {
		response.NotFound(c)
		return
	}

	posts, pag, err := h.postSvc.List(pagination.FromContext(c), post.ListQuery{Tag: tag.Slug})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"tag":        tag,
		"posts":      posts,
		"pagination": pag,
	})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tag, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, tag)
}

func (h *Handler) update(c *gin.Context) {
	tag, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if tag == nil {
		response.NotFound(c)
		return
	}

	var dto UpdateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	updated, err := h.svc.Update(tag.ID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, updated)
}

func (h *Handler) delete(c *gin.Context) {
	tag, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if tag == nil {
		response.NotFound(c)
		return
	}
	if err := h.svc.Delete(tag.ID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
