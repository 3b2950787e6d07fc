// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/users/user/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=admin teacher student"`
}

type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty"     validate:"omitempty,email"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=admin teacher student"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *CreateUserRequest) ToModel(passwordHash string) model.UserModel {
	return model.UserModel{
		UserName: strings.TrimSpace(r.UserName),
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: passwordHash,
		Role:     r.Role,
		IsActive: true,
	}
}

// ApplyPatch menerapkan field non-nil ke model existing.
func (r *UpdateUserRequest) ApplyPatch(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.FullName != nil {
		m.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type UserResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID.String(),
		UserName:  m.UserName,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: m.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
