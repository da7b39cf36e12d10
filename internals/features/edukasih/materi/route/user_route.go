package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/materi/controller"
)

// 🧩 Route materi untuk siswa (group /api/u)
func MateriUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMateriUserController(db)

	materi := api.Group("/materi")
	materi.Get("/", ctrl.GetAllMateri)     // 🔍 List + filter jenjang/kategori
	materi.Get("/:id", ctrl.GetMateriByID) // 🔍 Detail
}
