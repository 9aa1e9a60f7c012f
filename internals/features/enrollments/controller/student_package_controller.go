package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	dto "fermata_backend/internals/features/enrollments/dto"
	model "fermata_backend/internals/features/enrollments/model"
	pkgModel "fermata_backend/internals/features/packages/model"
	payroll "fermata_backend/internals/features/payroll/service"
	userModel "fermata_backend/internals/features/users/user/model"
	helper "fermata_backend/internals/helpers"
)

type StudentPackageController struct {
	DB *gorm.DB
}

func NewStudentPackageController(db *gorm.DB) *StudentPackageController {
	return &StudentPackageController{DB: db}
}

var validate = validator.New()

// preloadFull memuat package lengkap: siswa, paket, dan jadwal urut insersi.
func preloadFull(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Student").
		Preload("Package").
		Preload("Schedules", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq ASC") }).
		Preload("Schedules.Teacher")
}

/* ======================= CREATE ======================= */
// POST /api/student-packages
func (h *StudentPackageController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidPaymentStatus(req.PaymentStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment status")
	}

	// student_id harus user dengan role student
	var student userModel.UserModel
	if err := h.DB.Where("id = ? AND role = ?", req.StudentID, constants.RoleStudent).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Student not found or invalid user type")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	sp, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Create(sp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat student package")
	}

	// Rekonsiliasi slip untuk tiap jadwal awal; error di-log saja,
	// pembuatan package tetap dianggap sukses.
	var pkg pkgModel.PackageModel
	if err := h.DB.First(&pkg, "id = ?", sp.PackageID).Error; err != nil {
		log.Printf("[WARN] paket %s tidak ditemukan, slip tidak direkonsiliasi: %v", sp.PackageID, err)
	} else {
		for _, sch := range sp.Schedules {
			if err := payroll.Reconcile(h.DB, sch.TeacherID, sch, student.Name, pkg.Instrument); err != nil {
				log.Printf("[WARN] rekonsiliasi slip gagal untuk schedule %s: %v", sch.ID, err)
			}
		}
	}

	return helper.JsonCreated(c, "Student package berhasil dibuat", sp)
}

/* ======================= LIST / DETAIL ======================= */
// GET /api/student-packages
func (h *StudentPackageController) GetAll(c *fiber.Ctx) error {
	var rows []model.StudentPackageModel
	if err := preloadFull(h.DB).Order("created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/student-packages/:id
func (h *StudentPackageController) GetDetail(c *fiber.Ctx) error {
	var row model.StudentPackageModel
	if err := preloadFull(h.DB).First(&row, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student package not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================= DELETE ======================= */
// DELETE /api/student-packages/:studentPackageId
// Hard delete package + seluruh jadwalnya. Line item slip gaji yang sudah
// terlanjur direkonsiliasi TIDAK dibersihkan (derivasi satu arah).
func (h *StudentPackageController) Delete(c *fiber.Ctx) error {
	var row model.StudentPackageModel
	if err := h.DB.First(&row, "id = ?", c.Params("studentPackageId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student package not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Select("Schedules").Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus student package")
	}

	return helper.JsonDeleted(c, "Student package deleted successfully", nil)
}
