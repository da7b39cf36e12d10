package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/materi/controller"
)

// 🛠️ Route materi untuk guru/admin (group /api/a)
func MateriAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMateriAdminController(db)

	materi := api.Group("/materi")
	materi.Post("/", ctrl.CreateMateri)      // ➕ Buat materi
	materi.Put("/:id", ctrl.UpdateMateri)    // ✏️ Update partial
	materi.Delete("/:id", ctrl.DeleteMateri) // ❌ Hapus + kuis & riwayatnya
}
