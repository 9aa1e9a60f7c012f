package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	statsCtl "fermata_backend/internals/features/statistics/controller"
	authMw "fermata_backend/internals/middlewares/auth"
)

func StatisticsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statsCtl.NewStatisticsController(db)

	stats := r.Group("/statistics", authMw.AuthMiddleware())
	stats.Get("/", authMw.OnlyRoles(constants.RoleErrorAdmin("statistik"), constants.AdminOnly...), ctl.GetStatistics)
}
