package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fermata_backend/internals/constants"
	pkgCtl "fermata_backend/internals/features/packages/controller"
	authMw "fermata_backend/internals/middlewares/auth"
)

func PackageRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pkgCtl.NewPackageController(db)

	packages := r.Group("/packages")

	// Katalog bisa dibaca publik
	packages.Get("/", ctl.GetPackages)
	packages.Get("/:id", ctl.GetDetailPackage)

	// Mutasi katalog hanya admin
	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("katalog paket"), constants.AdminOnly...)
	packages.Post("/", authMw.AuthMiddleware(), adminOnly, ctl.CreatePackage)
	packages.Put("/:id", authMw.AuthMiddleware(), adminOnly, ctl.UpdatePackage)
	packages.Delete("/:id", authMw.AuthMiddleware(), adminOnly, ctl.DeletePackage)
}
