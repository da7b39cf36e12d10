package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/kuis/controller"
)

// 🛠️ Route kuis untuk guru/admin (group /api/a)
func KuisAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKuisAdminController(db)

	kuis := api.Group("/quiz")

	// ➕ Buat / ganti kuis sebuah materi
	kuis.Post("/", ctrl.SimpanKuis)

	// 📋 Laporan lengkap per materi
	kuis.Get("/report/:materiId", ctrl.GetLaporanKuis)
}
