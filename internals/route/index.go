package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasih_backend/internals/constants"
	kuisroute "edukasih_backend/internals/features/edukasih/kuis/route"
	materiroute "edukasih_backend/internals/features/edukasih/materi/route"
	siswaroute "edukasih_backend/internals/features/edukasih/siswa/route"
	"edukasih_backend/internals/middlewares/auth"
)

/* =========================================================
   ROUTING UTAMA
   /api/public : tanpa auth (listing materi utk landing page)
   /api/u      : user login (siswa ke atas)
   /api/a      : teacher/admin
========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setup routes...")

	BaseRoutes(app, db)

	api := app.Group("/api")

	// 🌐 Public
	public := api.Group("/public")
	materiroute.MateriUserRoutes(public, db)

	// 👤 User login
	user := api.Group("/u", auth.AuthMiddleware())
	kuisroute.KuisUserRoutes(user, db)
	materiroute.MateriUserRoutes(user, db)
	siswaroute.SiswaUserRoutes(user, db)

	// 🛠️ Teacher/Admin
	admin := api.Group("/a",
		auth.AuthMiddleware(),
		auth.OnlyRoles(
			constants.RoleErrorTeacher("manajemen konten"),
			constants.RoleTeacher, constants.RoleAdmin,
		),
	)
	kuisroute.KuisAdminRoutes(admin, db)
	materiroute.MateriAdminRoutes(admin, db)
	siswaroute.SiswaAdminRoutes(admin, db)

	log.Println("[SUCCESS] Routes siap")
}
