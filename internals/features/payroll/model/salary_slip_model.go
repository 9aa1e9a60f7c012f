package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "fermata_backend/internals/features/users/user/model"
)

// SalarySlipModel adalah slip gaji satu guru untuk satu bulan kalender.
// (teacher_id, month, year) unik — maksimal satu slip per guru per periode.
// total_salary selalu = Σ details.total_fee; data ini turunan dari schedules
// dan bukan source of truth.
type SalarySlipModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;not null;uniqueIndex:idx_slip_period" json:"teacher_id"`
	Month     int       `gorm:"column:month;not null;uniqueIndex:idx_slip_period" json:"month"` // 1..12
	Year      int       `gorm:"column:year;not null;uniqueIndex:idx_slip_period" json:"year"`

	TotalSalary int64 `gorm:"column:total_salary;not null;default:0" json:"total_salary"`

	Details []SalarySlipDetailModel `gorm:"foreignKey:SalarySlipID;constraint:OnDelete:CASCADE" json:"details"`

	Teacher *UserModel.UserModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SalarySlipModel) TableName() string { return "salary_slips" }

// SalarySlipDetailModel adalah satu line item slip: snapshot dari satu
// schedule pada saat rekonsiliasi. Kuncinya (date, room) di dalam slip —
// tidak ada schedule id yang disimpan di line item.
type SalarySlipDetailModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	SalarySlipID uuid.UUID `gorm:"column:salary_slip_id;type:uuid;not null;index" json:"salary_slip_id"`

	// Urutan insersi line item (bigserial)
	Seq int64 `gorm:"column:seq;autoIncrement;uniqueIndex" json:"-"`

	StudentName      string    `gorm:"column:student_name;size:100;not null" json:"student_name"`
	Instrument       string    `gorm:"column:instrument;size:30" json:"instrument"`
	Date             time.Time `gorm:"column:date;type:date;not null" json:"date"`
	Room             string    `gorm:"column:room;size:50" json:"room"`
	AttendanceStatus string    `gorm:"column:attendance_status;size:30" json:"attendance_status"`

	FeeClass     int64 `gorm:"column:fee_class;not null;default:0" json:"fee_class"`
	FeeTransport int64 `gorm:"column:fee_transport;not null;default:0" json:"fee_transport"`
	TotalFee     int64 `gorm:"column:total_fee;not null;default:0" json:"total_fee"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SalarySlipDetailModel) TableName() string { return "salary_slip_details" }
