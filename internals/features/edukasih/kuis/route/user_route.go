package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/kuis/controller"
	"edukasih_backend/internals/middlewares"
)

// 🧩 Route kuis untuk siswa (group /api/u)
func KuisUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKuisUserController(db)

	kuis := api.Group("/quiz")

	// 📊 Statistik + leaderboard per materi
	kuis.Get("/stats/:materiId", ctrl.GetStatistikKuis)

	// ➕ Submit jawaban (rate-limited per IP)
	kuis.Post("/submit", middlewares.SubmitKuisRateLimiter(), ctrl.SubmitKuis)

	// 🔍 Ambil kuis per materi (wildcard paling akhir)
	kuis.Get("/:materiId", ctrl.GetKuisByMateri)
}
