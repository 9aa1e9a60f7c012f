package model

import (
	"time"

	"github.com/google/uuid"
)

// PackageModel merepresentasikan tabel packages (katalog paket les).
type PackageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Duration     int       `gorm:"not null" json:"duration"` // menit per sesi: 30/45/60
	Price        int64     `gorm:"not null" json:"price"`
	SessionCount int       `gorm:"column:session_count;not null;default:0" json:"session_count"`
	Instrument   string    `gorm:"size:30;not null" json:"instrument"`

	// Soft delete ala katalog: delete hanya menonaktifkan
	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PackageModel) TableName() string { return "packages" }
