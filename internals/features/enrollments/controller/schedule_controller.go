package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	dto "fermata_backend/internals/features/enrollments/dto"
	model "fermata_backend/internals/features/enrollments/model"
	service "fermata_backend/internals/features/enrollments/service"
	payroll "fermata_backend/internals/features/payroll/service"
	helper "fermata_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// findPackage memuat student package + siswa + paket (tanpa jadwal).
func (h *ScheduleController) findPackage(id string) (*model.StudentPackageModel, error) {
	var sp model.StudentPackageModel
	if err := h.DB.Preload("Student").Preload("Package").
		First(&sp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student package not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &sp, nil
}

func (h *ScheduleController) findSchedule(packageID, scheduleID string) (*model.ScheduleModel, error) {
	var sch model.ScheduleModel
	if err := h.DB.Where("id = ? AND student_package_id = ?", scheduleID, packageID).
		First(&sch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Schedule not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &sch, nil
}

// reconcile menjalankan rekonsiliasi slip untuk satu jadwal. Nama siswa dan
// instrumen diambil dari relasi yang sudah dipreload.
func (h *ScheduleController) reconcile(sp *model.StudentPackageModel, sch *model.ScheduleModel) error {
	studentName := ""
	if sp.Student != nil {
		studentName = sp.Student.Name
	}
	instrument := ""
	if sp.Package != nil {
		instrument = sp.Package.Instrument
	}
	return payroll.Reconcile(h.DB, sch.TeacherID, *sch, studentName, instrument)
}

/* ======================= ADD ======================= */
// POST /api/student-packages/:studentPackageId/schedules
func (h *ScheduleController) AddSchedule(c *fiber.Ctx) error {
	sp, err := h.findPackage(c.Params("studentPackageId"))
	if err != nil {
		return err
	}

	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sch, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format")
	}
	sch.StudentPackageID = sp.ID

	if err := h.DB.Create(sch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah schedule")
	}

	// Rekonsiliasi di sini best-effort: gagal → log, jadwal tetap dianggap
	// berhasil ditambahkan.
	if err := h.reconcile(sp, sch); err != nil {
		log.Printf("[WARN] rekonsiliasi slip gagal untuk schedule %s: %v", sch.ID, err)
	}

	return helper.JsonOK(c, "Schedule added successfully", sch)
}

/* ======================= UPDATE ======================= */
// PUT /api/student-packages/:studentPackageId/schedules/:scheduleId
func (h *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	sp, err := h.findPackage(c.Params("studentPackageId"))
	if err != nil {
		return err
	}
	sch, err := h.findSchedule(c.Params("studentPackageId"), c.Params("scheduleId"))
	if err != nil {
		return err
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.ApplyTo(sch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format")
	}

	if err := h.DB.Save(sch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update schedule")
	}

	// Perubahan jadwal sudah tersimpan; kalau rekonsiliasi gagal, caller
	// harus tahu ada inkonsistensi downstream.
	if err := h.reconcile(sp, sch); err != nil {
		log.Printf("[ERROR] rekonsiliasi slip gagal untuk schedule %s: %v", sch.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"Schedule tersimpan, tapi sinkronisasi slip gaji gagal")
	}

	return helper.JsonUpdated(c, "Schedule berhasil diperbarui", sch)
}

/* ======================= ATTENDANCE ======================= */
// PUT /api/student-packages/:studentPackageId/schedules/:scheduleId/attendance
// Multipart: attendance_status, note, activity_photo (file, opsional).
func (h *ScheduleController) UpdateAttendance(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if !constants.IsValidAttendanceStatus(req.AttendanceStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance status")
	}

	sp, err := h.findPackage(c.Params("studentPackageId"))
	if err != nil {
		return err
	}
	sch, err := h.findSchedule(c.Params("studentPackageId"), c.Params("scheduleId"))
	if err != nil {
		return err
	}

	if !service.CanRecordAttendance(role, callerID, sch.TeacherID) {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to update this schedule")
	}

	req.ApplyTo(sch)

	// Foto kegiatan opsional; tanpa file, foto lama dipertahankan.
	if fileHeader, ferr := c.FormFile("activity_photo"); ferr == nil && fileHeader != nil {
		url, upErr := helper.SaveUploadedFile(c, fileHeader)
		if upErr != nil {
			log.Printf("[ERROR] upload foto kegiatan: %v", upErr)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan foto kegiatan")
		}
		sch.ActivityPhoto = &url
	}

	if err := h.DB.Save(sch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update kehadiran")
	}

	if err := h.reconcile(sp, sch); err != nil {
		log.Printf("[ERROR] rekonsiliasi slip gagal untuk schedule %s: %v", sch.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"Kehadiran tersimpan, tapi sinkronisasi slip gaji gagal")
	}

	return helper.JsonUpdated(c, "Kehadiran berhasil dicatat", sch)
}

/* ======================= DELETE ======================= */
// DELETE /api/student-packages/:studentPackageId/schedules/:scheduleId
// Menghapus tepat satu jadwal; line item slip yang sudah ada dibiarkan.
func (h *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	if _, err := h.findPackage(c.Params("studentPackageId")); err != nil {
		return err
	}
	sch, err := h.findSchedule(c.Params("studentPackageId"), c.Params("scheduleId"))
	if err != nil {
		return err
	}

	if err := h.DB.Delete(sch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus schedule")
	}

	return helper.JsonDeleted(c, "Schedule deleted successfully", nil)
}

/* ======================= LISTING ======================= */
// GET /api/student-packages/schedules/all — seluruh jadwal, flattened +
// dinormalisasi (transform presentasi, bukan mutasi).
func (h *ScheduleController) GetAllSchedules(c *fiber.Ctx) error {
	var schedules []model.ScheduleModel
	if err := h.DB.Preload("Teacher").Order("seq ASC").Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.ToFlatSchedules(schedules))
}

// GET /api/student-packages/schedules/teacher — jadwal milik guru yang login
func (h *ScheduleController) GetTeacherSchedules(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var schedules []model.ScheduleModel
	if err := h.DB.Where("teacher_id = ?", teacherID).
		Order("seq ASC").Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.ToFlatSchedules(schedules))
}

// GET /api/student-packages/schedules/student — jadwal milik siswa yang login
func (h *ScheduleController) GetStudentSchedules(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var schedules []model.ScheduleModel
	if err := h.DB.Preload("Teacher").
		Joins("JOIN student_packages sp ON sp.id = schedules.student_package_id").
		Where("sp.student_id = ?", studentID).
		Order("schedules.seq ASC").Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.ToFlatSchedules(schedules))
}
