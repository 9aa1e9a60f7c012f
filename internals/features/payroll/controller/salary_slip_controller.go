package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fermata_backend/internals/features/payroll/dto"
	model "fermata_backend/internals/features/payroll/model"
	service "fermata_backend/internals/features/payroll/service"
	helper "fermata_backend/internals/helpers"
)

type SalarySlipController struct {
	DB *gorm.DB
}

func NewSalarySlipController(db *gorm.DB) *SalarySlipController {
	return &SalarySlipController{DB: db}
}

var validate = validator.New()

/* ======================= LIST ======================= */
// GET /api/salary-slips
func (h *SalarySlipController) GetAllSalarySlips(c *fiber.Ctx) error {
	var slips []model.SalarySlipModel
	if err := h.DB.
		Preload("Details", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq ASC") }).
		Preload("Teacher").
		Order("year DESC, month DESC").
		Find(&slips).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(slips))
}

/* ======================= DETAIL PER PERIODE ======================= */
// GET /api/salary-slips/:teacherId/:month/:year
func (h *SalarySlipController) GetTeacherSalarySlip(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Teacher ID tidak valid")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "Bulan tidak valid")
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tahun tidak valid")
	}

	var slip model.SalarySlipModel
	if err := h.DB.
		Preload("Details", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq ASC") }).
		Preload("Teacher").
		Where("teacher_id = ? AND month = ? AND year = ?", teacherID, month, year).
		First(&slip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Salary slip not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(slip))
}

/* ======================= UPDATE ======================= */
// PUT /api/salary-slips/:id — hanya periode yang bisa digeser;
// total_salary selalu dihitung ulang dari details.
func (h *SalarySlipController) UpdateSalarySlip(c *fiber.Ctx) error {
	var slip model.SalarySlipModel
	if err := h.DB.
		Preload("Details", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq ASC") }).
		First(&slip, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Salary slip not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateSalarySlipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&slip)
	slip.TotalSalary = service.SumDetails(slip.Details)

	if err := h.DB.Save(&slip).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update salary slip")
	}

	return helper.JsonUpdated(c, "Salary slip berhasil diperbarui", dto.FromModel(slip))
}

/* ======================= DELETE ======================= */
// DELETE /api/salary-slips/:id
func (h *SalarySlipController) DeleteSalarySlip(c *fiber.Ctx) error {
	var slip model.SalarySlipModel
	if err := h.DB.First(&slip, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Salary slip not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Select("Details").Delete(&slip).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus salary slip")
	}

	return helper.JsonDeleted(c, "Salary slip deleted successfully", nil)
}
