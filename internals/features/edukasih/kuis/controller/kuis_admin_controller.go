package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/kuis/dto"
	"edukasih_backend/internals/features/edukasih/kuis/model"
	"edukasih_backend/internals/features/edukasih/kuis/service"
	materimodel "edukasih_backend/internals/features/edukasih/materi/model"
	helper "edukasih_backend/internals/helpers"
)

type KuisAdminController struct {
	DB      *gorm.DB
	Laporan *service.LaporanService
}

func NewKuisAdminController(db *gorm.DB) *KuisAdminController {
	return &KuisAdminController{
		DB:      db,
		Laporan: service.NewLaporanService(db),
	}
}

// =============================
// ➕ Simpan Kuis (create-or-replace per materi)
// =============================
// Satu materi maksimal satu kuis. Simpan ulang mengganti seluruh
// daftar pertanyaan, riwayat percobaan siswa tidak disentuh.
func (ctrl *KuisAdminController) SimpanKuis(c *fiber.Ctx) error {
	var body dto.SimpanKuisRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	materiID, err := uuid.Parse(body.MateriID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id tidak valid")
	}

	var materi materimodel.MateriModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&materi, "materi_id = ?", materiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	var kuis model.KuisModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&kuis, "kuis_materi_id = ?", materiID).Error
	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		kuis = model.KuisModel{KuisMateriID: materiID}
		created = true
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	if err := kuis.SetPertanyaan(body.KePertanyaan()); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&kuis).Error; err != nil {
		log.Printf("[ERROR] Gagal simpan kuis. materi=%s err=%v", materiID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kuis")
	}

	kuisDTO, err := dto.ToKuisDTO(kuis)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Data kuis rusak")
	}

	if created {
		log.Printf("[SUCCESS] Kuis dibuat. materi=%s soal=%d", materiID, len(body.Pertanyaan))
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Kuis berhasil dibuat", kuisDTO)
	}
	log.Printf("[SUCCESS] Kuis diperbarui. materi=%s soal=%d", materiID, len(body.Pertanyaan))
	return helper.Success(c, "Kuis berhasil diperbarui", kuisDTO)
}

// =============================
// 📋 Laporan Kuis per Materi (guru/admin)
// =============================
func (ctrl *KuisAdminController) GetLaporanKuis(c *fiber.Ctx) error {
	materiID, err := uuid.Parse(c.Params("materiId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id tidak valid")
	}

	hasil, err := ctrl.Laporan.GetLaporanKuis(c.UserContext(), materiID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMateriTidakDitemukan):
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		case errors.Is(err, service.ErrKuisTidakDitemukan):
			return fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan untuk materi ini")
		}
		log.Printf("[ERROR] GetLaporanKuis gagal. materi=%s err=%v", materiID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil laporan kuis")
	}

	return c.JSON(hasil)
}
