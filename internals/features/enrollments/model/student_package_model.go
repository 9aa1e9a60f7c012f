package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	PackageModel "fermata_backend/internals/features/packages/model"
	UserModel "fermata_backend/internals/features/users/user/model"
)

// PeriodWindow adalah satu jendela berlaku {start, end} di date_periode.
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// StudentPackageModel merepresentasikan pembelian paket oleh satu siswa,
// beserta daftar jadwal les yang dimilikinya (komposisi — jadwal tidak
// pernah hidup di luar student package-nya).
type StudentPackageModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	PackageID uuid.UUID `gorm:"column:package_id;type:uuid;not null;index" json:"package_id"`

	PaymentStatus string     `gorm:"column:payment_status;size:20;not null" json:"payment_status"`
	PaymentTotal  int64      `gorm:"column:payment_total;not null;default:0" json:"payment_total"`
	PaymentDate   *time.Time `gorm:"column:payment_date" json:"payment_date,omitempty"`

	// Daftar jendela {start, end}, disimpan sebagai JSONB
	DatePeriode datatypes.JSON `gorm:"column:date_periode;type:jsonb" json:"date_periode,omitempty"`

	// Urutan schedules = urutan insersi (kolom seq), bukan urutan tanggal
	Schedules []ScheduleModel `gorm:"foreignKey:StudentPackageID;constraint:OnDelete:CASCADE" json:"schedules"`

	Student *UserModel.UserModel       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Package *PackageModel.PackageModel `gorm:"foreignKey:PackageID" json:"package,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentPackageModel) TableName() string { return "student_packages" }
