package dto

import (
	"time"

	"github.com/google/uuid"

	"fermata_backend/internals/constants"
	m "fermata_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

// Update profile (partial) — field yang tidak dikirim dibiarkan apa adanya.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`

	// Diabaikan untuk admin
	Phone   *string `json:"phone" validate:"omitempty"`
	Address *string `json:"address" validate:"omitempty"`

	// Hanya dipakai untuk teacher
	TeacherData *TeacherData `json:"teacher_data" validate:"omitempty"`
}

type TeacherData struct {
	Instruments []string `json:"instruments" validate:"omitempty,dive,min=1"`
}

// ApplyTo menerapkan perubahan parsial ke model existing,
// dengan aturan role yang sama seperti saat register.
func (r UpdateProfileRequest) ApplyTo(u *m.UserModel) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if u.Role != constants.RoleAdmin {
		if r.Phone != nil {
			u.Phone = r.Phone
		}
		if r.Address != nil {
			u.Address = r.Address
		}
	}
	if u.Role == constants.RoleTeacher && r.TeacherData != nil && len(r.TeacherData.Instruments) > 0 {
		u.Instruments = r.TeacherData.Instruments
	}
}

/* =============== RESPONSES =============== */

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Phone       *string   `json:"phone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Instruments []string  `json:"instruments,omitempty"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

/* =============== MAPPERS =============== */

func FromModel(u m.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Phone:       u.Phone,
		Address:     u.Address,
		Instruments: u.Instruments,
		CoverImage:  u.CoverImage,
		CreatedAt:   u.CreatedAt,
	}
}

func FromModels(list []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
