package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	slipCtl "fermata_backend/internals/features/payroll/controller"
	authMw "fermata_backend/internals/middlewares/auth"
)

func SalarySlipRoutes(r fiber.Router, db *gorm.DB) {
	ctl := slipCtl.NewSalarySlipController(db)

	slips := r.Group("/salary-slips", authMw.AuthMiddleware())
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("slip gaji"), constants.AdminOnly...)

	slips.Get("/", adminOnly, ctl.GetAllSalarySlips)
	slips.Put("/:id", adminOnly, ctl.UpdateSalarySlip)
	slips.Delete("/:id", adminOnly, ctl.DeleteSalarySlip)

	// Guru boleh lihat slipnya sendiri (periode apa pun); admin bebas
	slips.Get("/:teacherId/:month/:year", ctl.GetTeacherSalarySlip)
}
