package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fermata_backend/internals/constants"
	m "fermata_backend/internals/features/enrollments/model"
)

func TestParseScheduleDate(t *testing.T) {
	got, err := ParseScheduleDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseScheduleDate("2024-06-10T09:00:00Z")
	assert.NoError(t, err)

	for _, bad := range []string{"", "bukan-tanggal", "2024-13-40", "10/06/2024"} {
		_, err := ParseScheduleDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestScheduleRequest_ToModel_AlwaysStartsNotYetHeld(t *testing.T) {
	req := ScheduleRequest{
		TeacherID:  uuid.New(),
		Date:       "2024-06-10",
		Time:       "10:00",
		Room:       "A",
		TeacherFee: 50000,
	}

	sch, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, constants.AttendanceNotYetHeld, sch.AttendanceStatus)
	assert.Equal(t, req.TeacherID, sch.TeacherID)
	assert.Equal(t, int64(50000), sch.TeacherFee)
}

func TestScheduleRequest_ToModel_RejectsBadDate(t *testing.T) {
	req := ScheduleRequest{TeacherID: uuid.New(), Date: "besok"}
	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestUpdateScheduleRequest_ApplyTo_PartialOnly(t *testing.T) {
	note := "catatan lama"
	photo := "http://host/public/uploads/foto.jpg"
	orig := m.ScheduleModel{
		TeacherID:        uuid.New(),
		Date:             time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:             "10:00",
		Room:             "A",
		TransportFee:     10000,
		TeacherFee:       50000,
		AttendanceStatus: constants.AttendanceSuccess,
		Note:             &note,
		ActivityPhoto:    &photo,
	}

	newRoom := "B"
	var newFee int64 = 75000
	req := UpdateScheduleRequest{Room: &newRoom, TeacherFee: &newFee}

	updated := orig
	require.NoError(t, req.ApplyTo(&updated))

	// field yang dikirim berubah
	assert.Equal(t, "B", updated.Room)
	assert.Equal(t, int64(75000), updated.TeacherFee)

	// field yang tidak dikirim tidak tersentuh — tidak ada implicit clearing
	assert.Equal(t, orig.TeacherID, updated.TeacherID)
	assert.Equal(t, orig.Date, updated.Date)
	assert.Equal(t, orig.Time, updated.Time)
	assert.Equal(t, orig.TransportFee, updated.TransportFee)
	assert.Equal(t, orig.AttendanceStatus, updated.AttendanceStatus)
	require.NotNil(t, updated.Note)
	assert.Equal(t, note, *updated.Note)
	require.NotNil(t, updated.ActivityPhoto)
	assert.Equal(t, photo, *updated.ActivityPhoto)
}

func TestUpdateScheduleRequest_ApplyTo_BadDateLeavesModelUsable(t *testing.T) {
	orig := m.ScheduleModel{Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}
	bad := "kapan-kapan"
	req := UpdateScheduleRequest{Date: &bad}
	assert.ErrorIs(t, req.ApplyTo(&orig), ErrInvalidDateFormat)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), orig.Date)
}

func TestUpdateAttendanceRequest_ApplyTo_OverwritesNote(t *testing.T) {
	old := "catatan lama"
	sch := m.ScheduleModel{
		AttendanceStatus: constants.AttendanceNotYetHeld,
		Note:             &old,
	}

	req := UpdateAttendanceRequest{
		AttendanceStatus: constants.AttendanceSuccess,
		Note:             "murid hadir tepat waktu",
	}
	req.ApplyTo(&sch)

	assert.Equal(t, constants.AttendanceSuccess, sch.AttendanceStatus)
	require.NotNil(t, sch.Note)
	assert.Equal(t, "murid hadir tepat waktu", *sch.Note)
}

func TestUpdateAttendanceRequest_ApplyTo_EmptyNoteClearsOldNote(t *testing.T) {
	old := "catatan dari pencatatan sebelumnya"
	sch := m.ScheduleModel{
		AttendanceStatus: constants.AttendanceSuccess,
		Note:             &old,
	}

	// koreksi kehadiran tanpa note: note lama ikut terhapus,
	// tidak diam-diam dipertahankan
	req := UpdateAttendanceRequest{AttendanceStatus: constants.AttendanceReschedule}
	req.ApplyTo(&sch)

	assert.Equal(t, constants.AttendanceReschedule, sch.AttendanceStatus)
	assert.Nil(t, sch.Note)
}

func TestUpdateAttendanceRequest_ApplyTo_NeverTouchesPhoto(t *testing.T) {
	photo := "http://host/public/uploads/bukti.jpg"
	sch := m.ScheduleModel{ActivityPhoto: &photo}

	req := UpdateAttendanceRequest{
		AttendanceStatus: constants.AttendanceSuccess,
		Note:             "tanpa foto baru",
	}
	req.ApplyTo(&sch)

	// foto hanya diganti kalau ada file baru yang diunggah
	require.NotNil(t, sch.ActivityPhoto)
	assert.Equal(t, photo, *sch.ActivityPhoto)
}

func TestToFlatSchedule_DefaultsForMissingFields(t *testing.T) {
	sch := m.ScheduleModel{
		ID:               uuid.New(),
		StudentPackageID: uuid.New(),
		TeacherID:        uuid.New(),
		Date:             time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	flat := ToFlatSchedule(sch)

	assert.Equal(t, constants.AttendanceNotYetHeld, flat.AttendanceStatus)
	assert.Equal(t, "-", flat.Note)
	assert.Equal(t, "-", flat.ActivityPhoto)

	// transform presentasi murni, model tidak berubah
	assert.Empty(t, sch.AttendanceStatus)
	assert.Nil(t, sch.Note)
	assert.Nil(t, sch.ActivityPhoto)
}

func TestToFlatSchedule_KeepsStoredValues(t *testing.T) {
	note := "murid hadir"
	photo := "http://host/public/uploads/a.jpg"
	sch := m.ScheduleModel{
		AttendanceStatus: constants.AttendanceReschedule,
		Note:             &note,
		ActivityPhoto:    &photo,
	}

	flat := ToFlatSchedule(sch)
	assert.Equal(t, constants.AttendanceReschedule, flat.AttendanceStatus)
	assert.Equal(t, note, flat.Note)
	assert.Equal(t, photo, flat.ActivityPhoto)
}
