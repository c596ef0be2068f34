package comment

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/posts/:id/comments", h.listByPost)

	authed := rg.Group("", authMW)
	authed.POST("/posts/:id/comments", h.create)
	authed.PUT("/comments/:id", h.update)
	authed.PATCH("/comments/:id", h.update)
	authed.DELETE("/comments/:id", h.delete)
}

func (h *Handler) listByPost(c *gin.Context) {
	comments, err := h.svc.ListByPost(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.svc.Create(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostMissing):
			response.NotFoundMsg(c, err.Error())
		case errors.Is(err, ErrForbidden):
			response.Forbidden(c)
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, comment)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if comment == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, comment)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Forbidden(c)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
