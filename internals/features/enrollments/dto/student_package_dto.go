package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "fermata_backend/internals/features/enrollments/model"
)

/* =============== REQUESTS =============== */

type CreateStudentPackageRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	PackageID uuid.UUID `json:"package_id" validate:"required"`

	PaymentStatus string     `json:"payment_status" validate:"required"`
	PaymentTotal  int64      `json:"payment_total" validate:"omitempty,gte=0"`
	PaymentDate   *time.Time `json:"payment_date" validate:"omitempty"`

	DatePeriode []m.PeriodWindow  `json:"date_periode" validate:"omitempty,dive"`
	Schedules   []ScheduleRequest `json:"schedules" validate:"omitempty,dive"`
}

// ToModel membangun student package beserta seluruh jadwal awalnya.
// Error hanya dari tanggal jadwal yang tidak bisa diparse.
func (r CreateStudentPackageRequest) ToModel() (*m.StudentPackageModel, error) {
	sp := &m.StudentPackageModel{
		StudentID:     r.StudentID,
		PackageID:     r.PackageID,
		PaymentStatus: r.PaymentStatus,
		PaymentTotal:  r.PaymentTotal,
		PaymentDate:   r.PaymentDate,
	}

	if len(r.DatePeriode) > 0 {
		raw, err := json.Marshal(r.DatePeriode)
		if err != nil {
			return nil, err
		}
		sp.DatePeriode = datatypes.JSON(raw)
	}

	for _, sr := range r.Schedules {
		sch, err := sr.ToModel()
		if err != nil {
			return nil, err
		}
		sp.Schedules = append(sp.Schedules, *sch)
	}
	return sp, nil
}
