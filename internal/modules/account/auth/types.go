package auth

import "errors"

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RefreshDTO struct {
	Refresh string `json:"refresh" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

var (
	errUserNotFound   = errors.New("auth user not found")
	errWrongPassword  = errors.New("auth wrong password")
	errUsernameTaken  = errors.New("username already taken")
	errInvalidRefresh = errors.New("invalid or expired refresh token")
)
