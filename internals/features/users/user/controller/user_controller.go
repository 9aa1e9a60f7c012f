package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "fermata_backend/internals/features/users/user/dto"
	model "fermata_backend/internals/features/users/user/model"
	helper "fermata_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

/* ======================= PROFILE ======================= */
// GET /api/users/profile
func (h *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(user))
}

// PUT /api/users/profile (multipart opsional: cover_image)
func (h *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return h.updateUser(c, userID.String())
}

// PUT /api/users/profile/:id — admin update user lain
func (h *UserController) AdminUpdateUser(c *fiber.Ctx) error {
	return h.updateUser(c, c.Params("id"))
}

func (h *UserController) updateUser(c *fiber.Ctx, id string) error {
	var user model.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.ApplyTo(&user)

	// Cover image opsional, disimpan apa adanya
	if fileHeader, err := c.FormFile("cover_image"); err == nil && fileHeader != nil {
		url, upErr := helper.SaveUploadedFile(c, fileHeader)
		if upErr != nil {
			log.Printf("[ERROR] upload cover image: %v", upErr)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan cover image")
		}
		user.CoverImage = &url
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update user")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromModel(user))
}

/* ======================= ADMIN ======================= */
// GET /api/users
func (h *UserController) GetUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := h.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(users))
}

// DELETE /api/users/:id
func (h *UserController) DeleteUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := h.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	return helper.JsonDeleted(c, "User deleted successfully", nil)
}
