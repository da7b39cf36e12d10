package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/materi/model"
	helper "edukasih_backend/internals/helpers"
)

type MateriUserController struct {
	DB *gorm.DB
}

func NewMateriUserController(db *gorm.DB) *MateriUserController {
	return &MateriUserController{DB: db}
}

// =============================
// 🔍 List Materi (filter jenjang/kategori, scope visibilitas)
// =============================
// Siswa hanya melihat materi global (materi_siswa_id NULL) plus
// materi yang memang ditujukan untuknya.
func (ctrl *MateriUserController) GetAllMateri(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.MateriModel{})

	if jenjang := strings.TrimSpace(c.Query("jenjang")); jenjang != "" {
		j := model.Jenjang(strings.ToUpper(jenjang))
		if !j.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "jenjang tidak valid (TK/SD/SMP/SMA)")
		}
		tx = tx.Where("materi_jenjang = ?", j)
	}
	if kategori := strings.TrimSpace(c.Query("kategori")); kategori != "" {
		k := model.KategoriMateri(strings.ToLower(kategori))
		if !k.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "kategori tidak valid (akademik/vokasional/bina_diri)")
		}
		tx = tx.Where("materi_kategori = ?", k)
	}

	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		tx = tx.Where("materi_siswa_id IS NULL OR materi_siswa_id = ?", userID)
	} else {
		tx = tx.Where("materi_siswa_id IS NULL")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung materi")
	}

	var daftar []model.MateriModel
	if err := tx.
		Order("materi_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&daftar).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil daftar materi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar materi")
	}

	return helper.Success(c, "Berhasil ambil daftar materi", fiber.Map{
		"materi":     daftar,
		"pagination": helper.BuildPagination(total, paging, len(daftar)),
	})
}

// =============================
// 🔍 Get Materi by ID
// =============================
func (ctrl *MateriUserController) GetMateriByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id tidak valid")
	}

	var materi model.MateriModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&materi, "materi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	return helper.Success(c, "Berhasil ambil materi", materi)
}
