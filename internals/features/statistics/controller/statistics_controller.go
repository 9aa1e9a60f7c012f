package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	enrollModel "fermata_backend/internals/features/enrollments/model"
	pkgModel "fermata_backend/internals/features/packages/model"
	userModel "fermata_backend/internals/features/users/user/model"
	helper "fermata_backend/internals/helpers"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type latestUser struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// GET /api/statistics — angka-angka dashboard admin
func (h *StatisticsController) GetStatistics(c *fiber.Ctx) error {
	var totalUsers int64
	if err := h.DB.Model(&userModel.UserModel{}).Count(&totalUsers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var usersByRole []statusCount
	if err := h.DB.Model(&userModel.UserModel{}).
		Select("role AS status, COUNT(*) AS count").
		Group("role").Scan(&usersByRole).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var latestUsers []latestUser
	if err := h.DB.Model(&userModel.UserModel{}).
		Select("name, email, role, to_char(created_at, 'YYYY-MM-DD\"T\"HH24:MI:SSZ') AS created_at").
		Order("created_at DESC").Limit(5).Scan(&latestUsers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var totalActivePackages int64
	if err := h.DB.Model(&pkgModel.PackageModel{}).
		Where("is_active = ?", true).Count(&totalActivePackages).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var activePackages []pkgModel.PackageModel
	if err := h.DB.Where("is_active = ?", true).
		Order("created_at DESC").Limit(5).Find(&activePackages).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var totalRevenue int64
	if err := h.DB.Model(&enrollModel.StudentPackageModel{}).
		Where("payment_status = ?", constants.PaymentPaid).
		Select("COALESCE(SUM(payment_total), 0)").Scan(&totalRevenue).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var latestPayments []enrollModel.StudentPackageModel
	if err := h.DB.Preload("Student").Preload("Package").
		Where("payment_status = ?", constants.PaymentPaid).
		Order("payment_date DESC").Limit(5).Find(&latestPayments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var paymentStatusCount []statusCount
	if err := h.DB.Model(&enrollModel.StudentPackageModel{}).
		Select("payment_status AS status, COUNT(*) AS count").
		Group("payment_status").Scan(&paymentStatusCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var scheduleStatusCount []statusCount
	if err := h.DB.Model(&enrollModel.ScheduleModel{}).
		Select("attendance_status AS status, COUNT(*) AS count").
		Group("attendance_status").Scan(&scheduleStatusCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_users":           totalUsers,
		"users_by_role":         usersByRole,
		"latest_users":          latestUsers,
		"total_active_packages": totalActivePackages,
		"active_packages":       activePackages,
		"total_revenue":         totalRevenue,
		"latest_payments":       latestPayments,
		"payment_status_count":  paymentStatusCount,
		"schedule_status_count": scheduleStatusCount,
	})
}
