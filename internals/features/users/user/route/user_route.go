package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	userCtl "fermata_backend/internals/features/users/user/controller"
	authMw "fermata_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users", authMw.AuthMiddleware())

	// Semua role yang terautentikasi
	users.Get("/profile", ctl.GetProfile)
	users.Put("/profile", ctl.UpdateProfile)

	// Admin only
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...)
	users.Get("/", adminOnly, ctl.GetUsers)
	users.Put("/profile/:id", adminOnly, ctl.AdminUpdateUser)
	users.Delete("/:id", adminOnly, ctl.DeleteUser)
}
