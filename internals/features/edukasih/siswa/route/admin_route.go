package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/siswa/controller"
)

// 🛠️ Route siswa untuk guru/admin (group /api/a)
func SiswaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSiswaAdminController(db)

	siswa := api.Group("/siswa")
	siswa.Post("/", ctrl.CreateSiswa)      // ➕ Buat akun siswa
	siswa.Get("/", ctrl.GetAllSiswa)       // 🔍 List + pagination + filter jenjang/kelas
	siswa.Get("/:id", ctrl.GetSiswaByID)   // 🔍 Detail
	siswa.Put("/:id", ctrl.UpdateSiswa)    // ✏️ Update partial
	siswa.Delete("/:id", ctrl.DeleteSiswa) // ❌ Hapus + riwayatnya
}
