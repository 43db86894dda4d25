package dto

import (
	"strings"

	"github.com/google/uuid"

	model "pustakaku_backend/internals/features/users/user/model"
)

type UserCreateRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *UserCreateRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:       m.ID,
		UserName: m.UserName,
		Email:    m.Email,
		IsActive: m.IsActive,
	}
}

func ToUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}
