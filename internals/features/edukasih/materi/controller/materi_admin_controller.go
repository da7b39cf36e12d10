package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	kuisservice "edukasih_backend/internals/features/edukasih/kuis/service"
	"edukasih_backend/internals/features/edukasih/materi/dto"
	"edukasih_backend/internals/features/edukasih/materi/model"
	helper "edukasih_backend/internals/helpers"
)

var validate = validator.New()

type MateriAdminController struct {
	DB *gorm.DB
}

func NewMateriAdminController(db *gorm.DB) *MateriAdminController {
	return &MateriAdminController{DB: db}
}

// =============================
// ➕ Create Materi
// =============================
func (ctrl *MateriAdminController) CreateMateri(c *fiber.Ctx) error {
	var body dto.CreateMateriRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	materi, err := body.KeModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_siswa_id tidak valid")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&materi).Error; err != nil {
		log.Printf("[ERROR] Gagal create materi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}

	log.Printf("[SUCCESS] Materi dibuat. id=%s judul=%q", materi.MateriID, materi.MateriJudul)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materi berhasil dibuat", materi)
}

// =============================
// ✏️ Update Materi (partial)
// =============================
func (ctrl *MateriAdminController) UpdateMateri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id tidak valid")
	}

	var body dto.UpdateMateriRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var materi model.MateriModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&materi, "materi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	if body.MateriJudul != nil {
		materi.MateriJudul = *body.MateriJudul
	}
	if body.MateriDeskripsi != nil {
		materi.MateriDeskripsi = *body.MateriDeskripsi
	}
	if body.MateriJenjang != nil {
		materi.MateriJenjang = model.Jenjang(*body.MateriJenjang)
	}
	if body.MateriKategori != nil {
		materi.MateriKategori = model.KategoriMateri(*body.MateriKategori)
	}
	if body.MateriTipeMedia != nil {
		materi.MateriTipeMedia = *body.MateriTipeMedia
	}
	if body.MateriMediaURL != nil {
		materi.MateriMediaURL = *body.MateriMediaURL
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&materi).Error; err != nil {
		log.Printf("[ERROR] Gagal update materi %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan perubahan materi")
	}

	return helper.Success(c, "Materi berhasil diperbarui", materi)
}

// =============================
// ❌ Delete Materi (kuis + riwayat ikut terhapus)
// =============================
func (ctrl *MateriAdminController) DeleteMateri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id tidak valid")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// siswa yang riwayatnya ikut terhapus perlu recompute
		// skor_bintang, catat dulu sebelum delete
		var siswaIDs []uuid.UUID
		if err := tx.Model(&kmodel.RiwayatMateriModel{}).
			Where("riwayat_materi_id = ?", id).
			Pluck("riwayat_siswa_id", &siswaIDs).Error; err != nil {
			return err
		}

		if err := tx.Delete(&kmodel.RiwayatMateriModel{}, "riwayat_materi_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&kmodel.KuisModel{}, "kuis_materi_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.MateriModel{}, "materi_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return kuisservice.SegarkanSkorBintang(tx, siswaIDs...)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal delete materi %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus materi")
	}

	log.Printf("[SUCCESS] Materi dihapus. id=%s", id)
	return helper.Success(c, "Materi berhasil dihapus", nil)
}
