package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fermata_backend/internals/constants"
	enrollModel "fermata_backend/internals/features/enrollments/model"
	model "fermata_backend/internals/features/payroll/model"
)

func mkSchedule(date time.Time, room string, teacherFee, transportFee int64) enrollModel.ScheduleModel {
	return enrollModel.ScheduleModel{
		ID:               uuid.New(),
		TeacherID:        uuid.New(),
		Date:             date,
		Time:             "10:00",
		Room:             room,
		TeacherFee:       teacherFee,
		TransportFee:     transportFee,
		AttendanceStatus: constants.AttendanceSuccess,
	}
}

func TestBuildDetail_SnapshotsScheduleFields(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sch := mkSchedule(date, "A", 50000, 10000)

	d := BuildDetail(sch, "John Doe", "Piano")

	assert.Equal(t, "John Doe", d.StudentName)
	assert.Equal(t, "Piano", d.Instrument)
	assert.Equal(t, date, d.Date)
	assert.Equal(t, "A", d.Room)
	assert.Equal(t, constants.AttendanceSuccess, d.AttendanceStatus)
	assert.Equal(t, int64(50000), d.FeeClass)
	assert.Equal(t, int64(10000), d.FeeTransport)
	assert.Equal(t, int64(60000), d.TotalFee)
}

func TestSameDetailKey_MatchesOnCalendarDateAndRoom(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	d := model.SalarySlipDetailModel{Date: date, Room: "A"}

	// jam berbeda di hari yang sama tetap match
	assert.True(t, SameDetailKey(d, date.Add(9*time.Hour), "A"))
	assert.False(t, SameDetailKey(d, date, "B"))
	assert.False(t, SameDetailKey(d, date.AddDate(0, 0, 1), "A"))
}

func TestUpsertDetail_ReplacesInPlaceWithoutDuplicating(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	first := BuildDetail(mkSchedule(date, "A", 50000, 0), "John", "Piano")
	details := UpsertDetail(nil, first)
	require.Len(t, details, 1)

	existingID := uuid.New()
	details[0].ID = existingID
	details[0].Seq = 7

	// rekonsiliasi ulang dengan fee berbeda: line item diganti, bukan ditambah
	second := BuildDetail(mkSchedule(date, "A", 75000, 5000), "John", "Piano")
	details = UpsertDetail(details, second)

	require.Len(t, details, 1)
	assert.Equal(t, int64(75000), details[0].FeeClass)
	assert.Equal(t, int64(5000), details[0].FeeTransport)
	assert.Equal(t, int64(80000), details[0].TotalFee)
	// identitas & urutan lama dipertahankan
	assert.Equal(t, existingID, details[0].ID)
	assert.Equal(t, int64(7), details[0].Seq)
}

func TestUpsertDetail_AppendsForDifferentRoom(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	details := UpsertDetail(nil, BuildDetail(mkSchedule(date, "A", 50000, 0), "John", "Piano"))
	details = UpsertDetail(details, BuildDetail(mkSchedule(date, "B", 40000, 5000), "Jane", "Gitar"))

	require.Len(t, details, 2)
	assert.Equal(t, "A", details[0].Room)
	assert.Equal(t, "B", details[1].Room)
}

func TestSumDetails_AlwaysEqualsTotalOfLineItems(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	details := UpsertDetail(nil, BuildDetail(mkSchedule(date, "A", 50000, 0), "John", "Piano"))
	assert.Equal(t, int64(50000), SumDetails(details))

	details = UpsertDetail(details, BuildDetail(mkSchedule(date, "B", 40000, 5000), "Jane", "Gitar"))
	assert.Equal(t, int64(95000), SumDetails(details))

	// re-rekonsiliasi kunci yang sama: total mengikuti nilai terbaru
	details = UpsertDetail(details, BuildDetail(mkSchedule(date, "A", 20000, 0), "John", "Piano"))
	assert.Equal(t, int64(65000), SumDetails(details))
	assert.Len(t, details, 2)
}

func TestPeriodOf(t *testing.T) {
	month, year := PeriodOf(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 6, month)
	assert.Equal(t, 2024, year)

	month, year = PeriodOf(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 12, month)
	assert.Equal(t, 2025, year)
}
