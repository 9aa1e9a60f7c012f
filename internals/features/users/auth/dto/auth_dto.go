package dto

import (
	"errors"

	"github.com/google/uuid"

	"fermata_backend/internals/constants"
	m "fermata_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`

	// Wajib untuk teacher & student, lihat ValidateByRole
	Phone   string `json:"phone" validate:"omitempty"`
	Address string `json:"address" validate:"omitempty"`

	// Wajib untuk teacher
	TeacherData *TeacherData `json:"teacher_data" validate:"omitempty"`
}

type TeacherData struct {
	Instruments []string `json:"instruments" validate:"omitempty,dive,min=1"`
}

// ValidateByRole memeriksa field kondisional yang tidak bisa dicek lewat
// tag validator: phone+address untuk non-admin, instruments untuk teacher.
func (r RegisterRequest) ValidateByRole() error {
	if r.Role != constants.RoleAdmin {
		if r.Phone == "" || r.Address == "" {
			return errors.New("Phone dan address wajib untuk teacher dan student")
		}
	}
	if r.Role == constants.RoleTeacher {
		if r.TeacherData == nil || len(r.TeacherData.Instruments) == 0 {
			return errors.New("Instruments wajib untuk teacher")
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =============== RESPONSES =============== */

type AuthResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Role        string    `json:"role"`
	Instruments []string  `json:"instruments,omitempty"`
	Token       string    `json:"token"`
}

/* =============== MAPPERS =============== */

func FromUserModel(u m.UserModel, token string) AuthResponse {
	return AuthResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		Role:        u.Role,
		Instruments: u.Instruments,
		Token:       token,
	}
}
