package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/modules/content/comment"
	"github.com/hoshgeldi/core/internal/pkg/flash"
)

func (h *Handler) commentCreate(c *gin.Context) {
	postID := c.Param("id")
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		h.flash.Add(c, flash.Error, "Comment text is required.")
		c.Redirect(http.StatusFound, "/post/"+postID)
		return
	}

	_, err := h.commentSvc.Create(middleware.CurrentUserID(c), postID, &comment.CreateCommentDTO{Text: text})
	if err != nil {
		if errors.Is(err, comment.ErrPostMissing) {
			h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "post not found"})
			return
		}
		h.flash.Add(c, flash.Error, "Could not add the comment.")
		c.Redirect(http.StatusFound, "/post/"+postID)
		return
	}
	h.flash.Add(c, flash.Success, "Comment added.")
	c.Redirect(http.StatusFound, "/post/"+postID)
}

func (h *Handler) commentEditForm(c *gin.Context) {
	cm, err := h.commentSvc.GetByID(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if cm == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "comment not found"})
		return
	}
	if cm.AuthorID != middleware.CurrentUserID(c) {
		h.flash.Add(c, flash.Error, "You can only edit your own comments.")
		c.Redirect(http.StatusFound, "/post/"+cm.PostID)
		return
	}
	h.render(c, http.StatusOK, "comment_form.html", gin.H{"Comment": cm})
}

func (h *Handler) commentEdit(c *gin.Context) {
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		h.flash.Add(c, flash.Error, "Comment text is required.")
		c.Redirect(http.StatusFound, "/comment/"+c.Param("id")+"/edit")
		return
	}

	cm, err := h.commentSvc.Update(middleware.CurrentUserID(c), c.Param("id"), &comment.UpdateCommentDTO{Text: text})
	if err != nil {
		if errors.Is(err, comment.ErrForbidden) {
			h.flash.Add(c, flash.Error, "You can only edit your own comments.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.renderError(c, err)
		return
	}
	if cm == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "comment not found"})
		return
	}
	h.flash.Add(c, flash.Success, "Comment updated.")
	c.Redirect(http.StatusFound, "/post/"+cm.PostID)
}

func (h *Handler) commentDelete(c *gin.Context) {
	cm, err := h.commentSvc.GetByID(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if cm == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "comment not found"})
		return
	}

	if err := h.commentSvc.Delete(middleware.CurrentUserID(c), cm.ID); err != nil {
		if errors.Is(err, comment.ErrForbidden) {
			h.flash.Add(c, flash.Error, "You can only delete your own comments.")
		} else {
			h.flash.Add(c, flash.Error, "Could not delete the comment.")
		}
		c.Redirect(http.StatusFound, "/post/"+cm.PostID)
		return
	}
	h.flash.Add(c, flash.Success, "Comment deleted.")
	c.Redirect(http.StatusFound, "/post/"+cm.PostID)
}
