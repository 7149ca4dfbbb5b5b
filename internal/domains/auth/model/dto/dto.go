package dto

import (
	userModel "canteen/internal/domains/user/model"
	"canteen/shared/constant"
	"canteen/shared/timezone"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) ToUserModel(digest string) userModel.User {
	return userModel.User{
		Username:  r.Username,
		Password:  digest,
		Role:      constant.RoleUser,
		CreatedAt: timezone.Now(),
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expires_in"`
}
