package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel merepresentasikan tabel users di database.
// Role menentukan kolom mana yang wajib: phone+address untuk non-admin,
// instruments untuk teacher.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	Phone   *string `gorm:"size:30" json:"phone,omitempty"`
	Address *string `gorm:"type:text" json:"address,omitempty"`

	// Instrumen yang diajarkan, hanya terisi untuk role teacher
	Instruments pq.StringArray `gorm:"column:instruments;type:text[]" json:"instruments,omitempty"`

	CoverImage *string `gorm:"type:text" json:"cover_image,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
