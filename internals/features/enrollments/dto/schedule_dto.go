package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fermata_backend/internals/constants"
	m "fermata_backend/internals/features/enrollments/model"
)

var ErrInvalidDateFormat = errors.New("Invalid date format")

// ParseScheduleDate menerima "2006-01-02" atau RFC3339.
func ParseScheduleDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateFormat
}

/* =============== REQUESTS =============== */

type ScheduleRequest struct {
	TeacherID    uuid.UUID `json:"teacher_id" validate:"required"`
	Date         string    `json:"date" validate:"required"`
	Time         string    `json:"time" validate:"omitempty"`
	Room         string    `json:"room" validate:"omitempty"`
	TransportFee int64     `json:"transport_fee" validate:"omitempty,gte=0"`
	TeacherFee   int64     `json:"teacher_fee" validate:"omitempty,gte=0"`
}

// ToModel memaksa attendance_status mulai dari "Belum Berlangsung",
// apa pun input kliennya.
func (r ScheduleRequest) ToModel() (*m.ScheduleModel, error) {
	date, err := ParseScheduleDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &m.ScheduleModel{
		TeacherID:        r.TeacherID,
		Date:             date,
		Time:             r.Time,
		Room:             r.Room,
		TransportFee:     r.TransportFee,
		TeacherFee:       r.TeacherFee,
		AttendanceStatus: constants.AttendanceNotYetHeld,
	}, nil
}

// Update (partial) — field yang tidak dikirim dibiarkan apa adanya,
// tidak ada implicit clearing.
type UpdateScheduleRequest struct {
	TeacherID    *uuid.UUID `json:"teacher_id" validate:"omitempty"`
	Date         *string    `json:"date" validate:"omitempty"`
	Time         *string    `json:"time" validate:"omitempty"`
	Room         *string    `json:"room" validate:"omitempty"`
	TransportFee *int64     `json:"transport_fee" validate:"omitempty,gte=0"`
	TeacherFee   *int64     `json:"teacher_fee" validate:"omitempty,gte=0"`
}

func (r UpdateScheduleRequest) ApplyTo(mo *m.ScheduleModel) error {
	if r.TeacherID != nil {
		mo.TeacherID = *r.TeacherID
	}
	if r.Date != nil {
		date, err := ParseScheduleDate(*r.Date)
		if err != nil {
			return err
		}
		mo.Date = date
	}
	if r.Time != nil {
		mo.Time = *r.Time
	}
	if r.Room != nil {
		mo.Room = *r.Room
	}
	if r.TransportFee != nil {
		mo.TransportFee = *r.TransportFee
	}
	if r.TeacherFee != nil {
		mo.TeacherFee = *r.TeacherFee
	}
	return nil
}

// Attendance: dikirim sebagai multipart form (foto kegiatan opsional)
type UpdateAttendanceRequest struct {
	AttendanceStatus string `json:"attendance_status" form:"attendance_status" validate:"required"`
	Note             string `json:"note" form:"note" validate:"omitempty"`
}

// ApplyTo menimpa status dan note setiap kali dipanggil — note kosong
// berarti note lama dihapus, bukan dipertahankan. Foto kegiatan tidak
// disentuh di sini (hanya diganti kalau ada file baru).
func (r UpdateAttendanceRequest) ApplyTo(mo *m.ScheduleModel) {
	mo.AttendanceStatus = r.AttendanceStatus
	if r.Note == "" {
		mo.Note = nil
		return
	}
	note := r.Note
	mo.Note = &note
}

/* =============== PROJECTION (read-only) =============== */

// FlatScheduleResponse adalah tampilan jadwal yang sudah dinormalisasi:
// status kosong → "Belum Berlangsung", note/foto kosong → "-".
// Murni transform presentasi, tidak pernah ditulis balik ke DB.
type FlatScheduleResponse struct {
	ID               uuid.UUID `json:"id"`
	StudentPackageID uuid.UUID `json:"student_package_id"`
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherName      string    `json:"teacher_name,omitempty"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Room             string    `json:"room"`
	TransportFee     int64     `json:"transport_fee"`
	TeacherFee       int64     `json:"teacher_fee"`
	AttendanceStatus string    `json:"attendance_status"`
	Note             string    `json:"note"`
	ActivityPhoto    string    `json:"activity_photo"`
}

func ToFlatSchedule(s m.ScheduleModel) FlatScheduleResponse {
	out := FlatScheduleResponse{
		ID:               s.ID,
		StudentPackageID: s.StudentPackageID,
		TeacherID:        s.TeacherID,
		Date:             s.Date,
		Time:             s.Time,
		Room:             s.Room,
		TransportFee:     s.TransportFee,
		TeacherFee:       s.TeacherFee,
		AttendanceStatus: s.AttendanceStatus,
		Note:             "-",
		ActivityPhoto:    "-",
	}
	if out.AttendanceStatus == "" {
		out.AttendanceStatus = constants.AttendanceNotYetHeld
	}
	if s.Note != nil && *s.Note != "" {
		out.Note = *s.Note
	}
	if s.ActivityPhoto != nil && *s.ActivityPhoto != "" {
		out.ActivityPhoto = *s.ActivityPhoto
	}
	if s.Teacher != nil {
		out.TeacherName = s.Teacher.Name
	}
	return out
}

func ToFlatSchedules(list []m.ScheduleModel) []FlatScheduleResponse {
	out := make([]FlatScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToFlatSchedule(s))
	}
	return out
}
