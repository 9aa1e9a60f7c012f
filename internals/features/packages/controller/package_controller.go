package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	dto "fermata_backend/internals/features/packages/dto"
	model "fermata_backend/internals/features/packages/model"
	helper "fermata_backend/internals/helpers"
)

type PackageController struct {
	DB *gorm.DB
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db}
}

var validate = validator.New()

/* ======================= LIST / DETAIL ======================= */
// GET /api/packages — hanya paket aktif
func (h *PackageController) GetPackages(c *fiber.Ctx) error {
	var rows []model.PackageModel
	if err := h.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error getting packages")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/packages/:id
func (h *PackageController) GetDetailPackage(c *fiber.Ctx) error {
	var row model.PackageModel
	if err := h.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Package not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================= CREATE ======================= */
// POST /api/packages
func (h *PackageController) CreatePackage(c *fiber.Ctx) error {
	var req dto.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidDuration(req.Duration) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid duration. Must be 30, 45, or 60 minutes")
	}
	if !constants.IsValidInstrument(req.Instrument) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid instrument")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating package")
	}

	return helper.JsonCreated(c, "Paket berhasil dibuat", m)
}

/* ======================= UPDATE ======================= */
// PUT /api/packages/:id
func (h *PackageController) UpdatePackage(c *fiber.Ctx) error {
	var row model.PackageModel
	if err := h.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Package not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Duration != nil && !constants.IsValidDuration(*req.Duration) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid duration. Must be 30, 45, or 60 minutes")
	}
	if req.Instrument != nil && !constants.IsValidInstrument(*req.Instrument) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid instrument %q", *req.Instrument))
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating package")
	}

	return helper.JsonUpdated(c, "Paket berhasil diperbarui", row)
}

/* ======================= DELETE (soft) ======================= */
// DELETE /api/packages/:id — hanya menonaktifkan
func (h *PackageController) DeletePackage(c *fiber.Ctx) error {
	res := h.DB.Model(&model.PackageModel{}).
		Where("id = ?", c.Params("id")).
		Update("is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting package")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Package not found")
	}

	return helper.JsonDeleted(c, "Package deleted successfully", nil)
}
