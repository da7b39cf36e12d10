package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "edukasih_backend/internals/helpers"
)

// Landing + health check (dipakai liveness probe Railway)
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "EduKasih API berjalan 🚀", fiber.Map{
			"service": "edukasih_backend",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database tidak tersedia")
		}
		if err := sqlDB.PingContext(c.UserContext()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database tidak merespons")
		}
		return helper.Success(c, "OK", fiber.Map{"database": "up"})
	})
}
