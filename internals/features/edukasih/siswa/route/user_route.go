package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/siswa/controller"
)

// 🧩 Route siswa untuk user login (group /api/u)
func SiswaUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSiswaUserController(db)

	siswa := api.Group("/siswa")

	// 🔍 Record sendiri (teacher/admin bebas)
	siswa.Get("/:id", ctrl.GetSiswa)

	// 📜 Riwayat materi + seluruh percobaan kuis
	siswa.Get("/:id/riwayat", ctrl.GetRiwayatSiswa)
}
