package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "fermata_backend/internals/features/users/user/model"
)

// ScheduleModel adalah satu kejadian les di dalam student package.
// attendance_status selalu mulai dari "Belum Berlangsung"; setelah itu
// transisinya bebas.
type ScheduleModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentPackageID uuid.UUID `gorm:"column:student_package_id;type:uuid;not null;index" json:"student_package_id"`

	// Urutan insersi di dalam package (bigserial)
	Seq int64 `gorm:"column:seq;autoIncrement;uniqueIndex" json:"-"`

	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;not null;index" json:"teacher_id"`

	Date time.Time `gorm:"column:date;type:date;not null" json:"date"`
	Time string    `gorm:"column:time;size:20" json:"time"`
	Room string    `gorm:"column:room;size:50" json:"room"`

	TransportFee int64 `gorm:"column:transport_fee;not null;default:0" json:"transport_fee"`
	TeacherFee   int64 `gorm:"column:teacher_fee;not null;default:0" json:"teacher_fee"`

	AttendanceStatus string  `gorm:"column:attendance_status;size:30;not null;default:'Belum Berlangsung'" json:"attendance_status"`
	Note             *string `gorm:"column:note;type:text" json:"note,omitempty"`
	ActivityPhoto    *string `gorm:"column:activity_photo;type:text" json:"activity_photo,omitempty"`

	Teacher *UserModel.UserModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleModel) TableName() string { return "schedules" }

// TotalFee = teacher_fee + transport_fee, dasar perhitungan slip gaji.
func (s ScheduleModel) TotalFee() int64 {
	return s.TeacherFee + s.TransportFee
}
