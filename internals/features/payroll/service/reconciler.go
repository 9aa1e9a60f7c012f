package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	enrollModel "fermata_backend/internals/features/enrollments/model"
	model "fermata_backend/internals/features/payroll/model"
	userModel "fermata_backend/internals/features/users/user/model"
)

// Rekonsiliasi slip gaji: satu schedule → satu line item pada slip
// (teacher, bulan, tahun) milik guru tersebut. Line item dikunci dengan
// (date, room) di dalam slip; rekonsiliasi ulang mengganti line item yang
// sama, bukan menduplikasi.

// BuildDetail membuat snapshot line item dari satu schedule.
func BuildDetail(sch enrollModel.ScheduleModel, studentName, instrument string) model.SalarySlipDetailModel {
	return model.SalarySlipDetailModel{
		StudentName:      studentName,
		Instrument:       instrument,
		Date:             sch.Date,
		Room:             sch.Room,
		AttendanceStatus: sch.AttendanceStatus,
		FeeClass:         sch.TeacherFee,
		FeeTransport:     sch.TransportFee,
		TotalFee:         sch.TotalFee(),
	}
}

// SameDetailKey: kuncinya tanggal (kalender) + room.
func SameDetailKey(d model.SalarySlipDetailModel, date time.Time, room string) bool {
	dy, dm, dd := d.Date.Date()
	y, m, day := date.Date()
	return dy == y && dm == m && dd == day && d.Room == room
}

// UpsertDetail mengganti line item dengan kunci sama di tempatnya (ID dan
// urutan lama dipertahankan), atau menambah di akhir bila belum ada.
func UpsertDetail(details []model.SalarySlipDetailModel, d model.SalarySlipDetailModel) []model.SalarySlipDetailModel {
	for i := range details {
		if SameDetailKey(details[i], d.Date, d.Room) {
			d.ID = details[i].ID
			d.Seq = details[i].Seq
			d.SalarySlipID = details[i].SalarySlipID
			d.CreatedAt = details[i].CreatedAt
			details[i] = d
			return details
		}
	}
	return append(details, d)
}

// SumDetails menghitung ulang total_salary dari seluruh line item.
func SumDetails(details []model.SalarySlipDetailModel) int64 {
	var total int64
	for _, d := range details {
		total += d.TotalFee
	}
	return total
}

// PeriodOf menentukan periode slip dari tanggal schedule.
func PeriodOf(date time.Time) (month, year int) {
	return int(date.Month()), date.Year()
}

// Reconcile meng-upsert line item untuk satu schedule ke slip gaji guru
// pada periode bulan/tahun schedule tersebut, lalu menghitung ulang
// total_salary dan menyimpan slip. Kebijakan propagasi error ada di
// pemanggil (di-swallow setelah create, diteruskan setelah update).
func Reconcile(db *gorm.DB, teacherID uuid.UUID, sch enrollModel.ScheduleModel, studentName, instrument string) error {
	var teacher userModel.UserModel
	if err := db.Where("id = ? AND role = ?", teacherID, constants.RoleTeacher).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("rekonsiliasi gagal: guru %s tidak ditemukan", teacherID)
		}
		return fmt.Errorf("rekonsiliasi gagal: %w", err)
	}

	month, year := PeriodOf(sch.Date)

	var slip model.SalarySlipModel
	err := db.Preload("Details", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("seq ASC")
	}).Where("teacher_id = ? AND month = ? AND year = ?", teacherID, month, year).
		First(&slip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		slip = model.SalarySlipModel{
			TeacherID: teacherID,
			Month:     month,
			Year:      year,
		}
	} else if err != nil {
		return fmt.Errorf("rekonsiliasi gagal: %w", err)
	}

	detail := BuildDetail(sch, studentName, instrument)
	slip.Details = UpsertDetail(slip.Details, detail)
	slip.TotalSalary = SumDetails(slip.Details)

	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&slip).Error; err != nil {
		return fmt.Errorf("rekonsiliasi gagal: %w", err)
	}
	return nil
}
