// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollRoute "fermata_backend/internals/features/enrollments/route"
	packageRoute "fermata_backend/internals/features/packages/route"
	payrollRoute "fermata_backend/internals/features/payroll/route"
	statsRoute "fermata_backend/internals/features/statistics/route"
	authRoute "fermata_backend/internals/features/users/auth/route"
	userRoute "fermata_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up PackageRoutes...")
	packageRoute.PackageRoutes(api, db)

	log.Println("[INFO] Setting up StudentPackageRoutes...")
	enrollRoute.StudentPackageRoutes(api, db)

	log.Println("[INFO] Setting up SalarySlipRoutes...")
	payrollRoute.SalarySlipRoutes(api, db)

	log.Println("[INFO] Setting up StatisticsRoutes...")
	statsRoute.StatisticsRoutes(api, db)
}
