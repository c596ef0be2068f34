package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/middleware"
	"github.com/hoshgeldi/core/internal/modules/account/auth"
	"github.com/hoshgeldi/core/internal/modules/account/profile"
	"github.com/hoshgeldi/core/internal/pkg/flash"
	sessionpkg "github.com/hoshgeldi/core/internal/pkg/session"
)

const tokenCookieMaxAge = 30 * 24 * 60 * 60

func (h *Handler) registerForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) register(c *gin.Context) {
	dto := auth.RegisterDTO{
		Username: strings.TrimSpace(c.PostForm("username")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}
	if len(dto.Username) < 3 || len(dto.Password) < 6 {
		h.flash.Add(c, flash.Error, "Username needs 3+ characters and password 6+.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	u, err := h.authSvc.Register(&dto)
	if err != nil {
		h.flash.Add(c, flash.Error, "Could not register: "+err.Error())
		c.Redirect(http.StatusFound, "/register")
		return
	}

	// New accounts are signed in immediately.
	token, _, err := sessionpkg.Issue(h.db, u.ID, c.ClientIP(), c.Request.UserAgent(), sessionpkg.DefaultTTL)
	if err != nil {
		h.flash.Add(c, flash.Warning, "Account created, please sign in.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	setTokenCookie(c, token)
	h.flash.Add(c, flash.Success, "Welcome, "+u.Username+"!")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	token, u, err := h.authSvc.Login(username, password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.flash.Add(c, flash.Error, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	setTokenCookie(c, token)
	h.flash.Add(c, flash.Success, "Welcome back, "+u.Username+"!")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) logout(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		_ = h.authSvc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	}
	clearTokenCookie(c)
	h.flash.Add(c, flash.Info, "Signed out.")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) profilePage(c *gin.Context) {
	actorID := middleware.CurrentUserID(c)
	p, err := h.profileSvc.Get(actorID, actorID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile.html", gin.H{"Profile": p})
}

func (h *Handler) profileEditForm(c *gin.Context) {
	actorID := middleware.CurrentUserID(c)
	p, err := h.profileSvc.Get(actorID, actorID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile_form.html", gin.H{"Profile": p})
}

func (h *Handler) profileEdit(c *gin.Context) {
	avatar := strings.TrimSpace(c.PostForm("avatar"))
	bio := c.PostForm("bio")

	actorID := middleware.CurrentUserID(c)
	_, err := h.profileSvc.Update(actorID, actorID, &profile.UpdateProfileDTO{
		Avatar: &avatar,
		Bio:    &bio,
	})
	if err != nil {
		h.flash.Add(c, flash.Error, "Could not save the profile.")
		c.Redirect(http.StatusFound, "/profile/edit")
		return
	}
	h.flash.Add(c, flash.Success, "Profile saved.")
	c.Redirect(http.StatusFound, "/profile")
}

func (h *Handler) accountDeleteForm(c *gin.Context) {
	h.render(c, http.StatusOK, "account_delete.html", nil)
}

func (h *Handler) accountDelete(c *gin.Context) {
	if err := h.userSvc.Delete(middleware.CurrentUserID(c)); err != nil {
		h.flash.Add(c, flash.Error, "Could not delete the account.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	clearTokenCookie(c)
	h.flash.Add(c, flash.Info, "Account deleted.")
	c.Redirect(http.StatusFound, "/")
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.CookieToken, token, tokenCookieMaxAge, "/", "", false, true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetCookie(middleware.CookieToken, "", -1, "/", "", false, true)
}
