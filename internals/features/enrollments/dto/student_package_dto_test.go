package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fermata_backend/internals/constants"
	m "fermata_backend/internals/features/enrollments/model"
)

func TestCreateStudentPackageRequest_ToModel_KeepsScheduleOrder(t *testing.T) {
	teacher := uuid.New()
	req := CreateStudentPackageRequest{
		StudentID:     uuid.New(),
		PackageID:     uuid.New(),
		PaymentStatus: constants.PaymentUnpaid,
		PaymentTotal:  400000,
		Schedules: []ScheduleRequest{
			{TeacherID: teacher, Date: "2024-06-10", Room: "A", TeacherFee: 50000},
			{TeacherID: teacher, Date: "2024-06-17", Room: "A", TeacherFee: 50000},
			{TeacherID: teacher, Date: "2024-06-24", Room: "B", TeacherFee: 50000},
		},
	}

	sp, err := req.ToModel()
	require.NoError(t, err)
	require.Len(t, sp.Schedules, 3)

	// urutan input dipertahankan apa adanya
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), sp.Schedules[0].Date)
	assert.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), sp.Schedules[1].Date)
	assert.Equal(t, time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC), sp.Schedules[2].Date)
	for _, sch := range sp.Schedules {
		assert.Equal(t, constants.AttendanceNotYetHeld, sch.AttendanceStatus)
	}

	assert.Equal(t, constants.PaymentUnpaid, sp.PaymentStatus)
	assert.Equal(t, int64(400000), sp.PaymentTotal)
}

func TestCreateStudentPackageRequest_ToModel_MarshalsDatePeriode(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	req := CreateStudentPackageRequest{
		StudentID:     uuid.New(),
		PackageID:     uuid.New(),
		PaymentStatus: constants.PaymentPaid,
		DatePeriode: []m.PeriodWindow{
			{Start: start, End: end},
		},
	}

	sp, err := req.ToModel()
	require.NoError(t, err)
	require.NotEmpty(t, sp.DatePeriode)

	var back []m.PeriodWindow
	require.NoError(t, json.Unmarshal(sp.DatePeriode, &back))
	require.Len(t, back, 1)
	assert.True(t, back[0].Start.Equal(start))
	assert.True(t, back[0].End.Equal(end))
}

func TestCreateStudentPackageRequest_ToModel_BadScheduleDate(t *testing.T) {
	req := CreateStudentPackageRequest{
		StudentID:     uuid.New(),
		PackageID:     uuid.New(),
		PaymentStatus: constants.PaymentUnpaid,
		Schedules: []ScheduleRequest{
			{TeacherID: uuid.New(), Date: "minggu-depan"},
		},
	}

	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
