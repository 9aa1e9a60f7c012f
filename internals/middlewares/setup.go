package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"fermata_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang aman:
// recovery paling luar, lalu CORS, rate limiter, dan logger.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
