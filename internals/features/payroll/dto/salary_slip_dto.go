package dto

import (
	"time"

	"github.com/google/uuid"

	m "fermata_backend/internals/features/payroll/model"
)

/* =============== REQUESTS =============== */

// Update (partial) — total_salary tidak bisa di-set manual, selalu turunan.
type UpdateSalarySlipRequest struct {
	Month *int `json:"month" validate:"omitempty,min=1,max=12"`
	Year  *int `json:"year" validate:"omitempty,gte=2000,lte=2100"`
}

func (r UpdateSalarySlipRequest) ApplyTo(mo *m.SalarySlipModel) {
	if r.Month != nil {
		mo.Month = *r.Month
	}
	if r.Year != nil {
		mo.Year = *r.Year
	}
}

/* =============== RESPONSES =============== */

type SalarySlipDetailResponse struct {
	StudentName      string    `json:"student_name"`
	Instrument       string    `json:"instrument"`
	Date             time.Time `json:"date"`
	Room             string    `json:"room"`
	AttendanceStatus string    `json:"attendance_status"`
	FeeClass         int64     `json:"fee_class"`
	FeeTransport     int64     `json:"fee_transport"`
	TotalFee         int64     `json:"total_fee"`
}

type SalarySlipResponse struct {
	ID          uuid.UUID                  `json:"id"`
	TeacherID   uuid.UUID                  `json:"teacher_id"`
	TeacherName string                     `json:"teacher_name,omitempty"`
	Month       int                        `json:"month"`
	Year        int                        `json:"year"`
	TotalSalary int64                      `json:"total_salary"`
	Details     []SalarySlipDetailResponse `json:"details"`
}

/* =============== MAPPERS =============== */

func FromDetailModel(d m.SalarySlipDetailModel) SalarySlipDetailResponse {
	return SalarySlipDetailResponse{
		StudentName:      d.StudentName,
		Instrument:       d.Instrument,
		Date:             d.Date,
		Room:             d.Room,
		AttendanceStatus: d.AttendanceStatus,
		FeeClass:         d.FeeClass,
		FeeTransport:     d.FeeTransport,
		TotalFee:         d.TotalFee,
	}
}

func FromModel(x m.SalarySlipModel) SalarySlipResponse {
	details := make([]SalarySlipDetailResponse, 0, len(x.Details))
	for _, d := range x.Details {
		details = append(details, FromDetailModel(d))
	}
	resp := SalarySlipResponse{
		ID:          x.ID,
		TeacherID:   x.TeacherID,
		Month:       x.Month,
		Year:        x.Year,
		TotalSalary: x.TotalSalary,
		Details:     details,
	}
	if x.Teacher != nil {
		resp.TeacherName = x.Teacher.Name
	}
	return resp
}

func FromModels(list []m.SalarySlipModel) []SalarySlipResponse {
	out := make([]SalarySlipResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
