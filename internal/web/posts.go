package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/modules/content/post"
	"github.com/hoshgeldi/core/internal/pkg/flash"
	"github.com/hoshgeldi/core/internal/pkg/pagination"
)

func (h *Handler) index(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	posts, pag, err := h.postSvc.List(pagination.FromContext(c), post.ListQuery{Search: q})
	if err != nil {
		h.renderError(c, err)
		return
	}
	if q != "" {
		switch pag.Total {
		case 0:
			h.flash.Add(c, flash.Info, "No posts matched your search.")
		case 1:
			h.flash.Add(c, flash.Success, "Found 1 matching post.")
		default:
			h.flash.Add(c, flash.Success, fmt.Sprintf("Found %d matching posts.", pag.Total))
		}
	}
	h.render(c, http.StatusOK, "index.html", gin.H{
		"Posts":      posts,
		"Pagination": pag,
		"Search":     q,
	})
}

func (h *Handler) postDetail(c *gin.Context) {
	p, err := h.postSvc.GetByID(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if p == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "post not found"})
		return
	}
	comments, err := h.commentSvc.ListByPost(p.ID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "post_detail.html", gin.H{
		"Post":     p,
		"Comments": comments,
		"IsOwner":  middleware.CurrentUserID(c) == p.AuthorID,
	})
}

func (h *Handler) postForm(c *gin.Context) {
	cats, err := h.categorySvc.List()
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "post_form.html", gin.H{
		"Categories": cats,
		"TagLine":    "",
		"Action":     "/new",
	})
}

func (h *Handler) postCreate(c *gin.Context) {
	dto := post.CreatePostDTO{
		Title: strings.TrimSpace(c.PostForm("title")),
		Text:  c.PostForm("text"),
		Image: strings.TrimSpace(c.PostForm("image")),
		Tags:  splitTags(c.PostForm("tags")),
	}
	if catID := strings.TrimSpace(c.PostForm("category_id")); catID != "" {
		dto.CategoryID = &catID
	}
	if dto.Title == "" || dto.Text == "" {
		h.flash.Add(c, flash.Error, "Title and text are required.")
		c.Redirect(http.StatusFound, "/new")
		return
	}

	p, err := h.postSvc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		h.flash.Add(c, flash.Error, "Could not publish the post.")
		c.Redirect(http.StatusFound, "/new")
		return
	}
	h.flash.Add(c, flash.Success, "Post published.")
	c.Redirect(http.StatusFound, "/post/"+p.ID)
}

func (h *Handler) postEditForm(c *gin.Context) {
	p, err := h.postSvc.GetByID(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if p == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "post not found"})
		return
	}
	if p.AuthorID != middleware.CurrentUserID(c) {
		h.flash.Add(c, flash.Error, "You can only edit your own posts.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	cats, err := h.categorySvc.List()
	if err != nil {
		h.renderError(c, err)
		return
	}
	tagNames := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tagNames = append(tagNames, t.Name)
	}
	h.render(c, http.StatusOK, "post_form.html", gin.H{
		"Post":       p,
		"Categories": cats,
		"TagLine":    strings.Join(tagNames, ", "),
		"Action":     "/post/" + p.ID + "/edit",
	})
}

func (h *Handler) postEdit(c *gin.Context) {
	id := c.Param("id")
	title := strings.TrimSpace(c.PostForm("title"))
	text := c.PostForm("text")
	image := strings.TrimSpace(c.PostForm("image"))
	catID := strings.TrimSpace(c.PostForm("category_id"))

	dto := post.UpdatePostDTO{
		Title:      &title,
		Text:       &text,
		Image:      &image,
		CategoryID: &catID,
		Tags:       splitTags(c.PostForm("tags")),
	}
	p, err := h.postSvc.Update(middleware.CurrentUserID(c), id, &dto)
	if err != nil {
		if errors.Is(err, post.ErrForbidden) {
			h.flash.Add(c, flash.Error, "You can only edit your own posts.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.renderError(c, err)
		return
	}
	if p == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "post not found"})
		return
	}
	h.flash.Add(c, flash.Success, "Post updated.")
	c.Redirect(http.StatusFound, "/post/"+p.ID)
}

func (h *Handler) postDelete(c *gin.Context) {
	err := h.postSvc.Delete(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, post.ErrForbidden) {
			h.flash.Add(c, flash.Error, "You can only delete your own posts.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.flash.Add(c, flash.Error, "Could not delete the post.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.flash.Add(c, flash.Success, "Post deleted.")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) myPosts(c *gin.Context) {
	posts, pag, err := h.postSvc.ListByAuthor(middleware.CurrentUserID(c), pagination.FromContext(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "my_posts.html", gin.H{
		"Posts":      posts,
		"Pagination": pag,
	})
}

func (h *Handler) categoryPage(c *gin.Context) {
	cat, err := h.categorySvc.GetBySlug(c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if cat == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "category not found"})
		return
	}
	posts, pag, err := h.postSvc.List(pagination.FromContext(c), post.ListQuery{Category: cat.Slug})
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxonomy.html", gin.H{
		"Title":      "Category: " + cat.Name,
		"Posts":      posts,
		"Pagination": pag,
	})
}

func (h *Handler) tagPage(c *gin.Context) {
	t, err := h.tagSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if t == nil {
		h.render(c, http.StatusNotFound, "error.html", gin.H{"Error": "tag not found"})
		return
	}
	posts, pag, err := h.postSvc.List(pagination.FromContext(c), post.ListQuery{Tag: t.Slug})
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "taxonomy.html", gin.H{
		"Title":      "Tag: " + t.Name,
		"Posts":      posts,
		"Pagination": pag,
	})
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
