package profile

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	p := rg.Group("/profile", authMW)
	p.GET("", h.get)
	p.PUT("", h.update)
	p.PATCH("", h.update)
}

func (h *Handler) get(c *gin.Context) {
	actorID := middleware.CurrentUserID(c)
	profile, err := h.svc.Get(actorID, actorID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, profile)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actorID := middleware.CurrentUserID(c)
	profile, err := h.svc.Update(actorID, actorID, &dto)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, profile)
}
