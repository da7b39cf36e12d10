package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edukasih_backend/internals/features/edukasih/kuis/dto"
	"edukasih_backend/internals/features/edukasih/kuis/model"
	"edukasih_backend/internals/features/edukasih/kuis/service"
	materimodel "edukasih_backend/internals/features/edukasih/materi/model"
	helper "edukasih_backend/internals/helpers"
)

var validate = validator.New()

type KuisUserController struct {
	DB        *gorm.DB
	Penilaian *service.PenilaianService
	Statistik *service.StatistikService
}

func NewKuisUserController(db *gorm.DB) *KuisUserController {
	return &KuisUserController{
		DB:        db,
		Penilaian: service.NewPenilaianService(db),
		Statistik: service.NewStatistikService(db),
	}
}

// =============================
// 🔍 Get Kuis by Materi
// =============================
// Kunci jawaban ikut terkirim apa adanya: penyederhanaan trust
// yang disengaja, client butuh kunci untuk mode latihan offline.
// Materi tidak ada → 404; materi ada tapi kuis belum dibuat →
// 200 dengan data null (biar polling client tetap sederhana).
func (ctrl *KuisUserController) GetKuisByMateri(c *fiber.Ctx) error {
	materiID, err := uuid.Parse(c.Params("materiId"))
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
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&kuis, "kuis_materi_id = ?", materiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Kuis belum tersedia untuk materi ini", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	kuisDTO, err := dto.ToKuisDTO(kuis)
	if err != nil {
		log.Printf("[ERROR] Gagal parse pertanyaan kuis %s: %v", kuis.KuisID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Data kuis rusak")
	}

	return helper.Success(c, "Berhasil ambil kuis", kuisDTO)
}

// =============================
// ➕ Submit Jawaban Kuis
// =============================
func (ctrl *KuisUserController) SubmitKuis(c *fiber.Ctx) error {
	var body dto.SubmitKuisRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	kuisID, err := uuid.Parse(body.KuisID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "kuis_id tidak valid")
	}

	// siswa_id opsional: kalau tidak ada, skor tetap dihitung
	// tanpa disimpan (sesi preview/anonim)
	var siswaID *uuid.UUID
	if body.SiswaID != nil && *body.SiswaID != "" {
		id, err := uuid.Parse(*body.SiswaID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "siswa_id tidak valid")
		}
		siswaID = &id
	}

	hasil, err := ctrl.Penilaian.SubmitKuis(c.UserContext(), &service.SubmitKuisInput{
		SiswaID: siswaID,
		KuisID:  kuisID,
		Jawaban: body.JawabanSiswa,
	})
	if err != nil {
		if errors.Is(err, service.ErrKuisTidakDitemukan) {
			return fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		log.Printf("[ERROR] SubmitKuis gagal. kuis=%s siswa=%v err=%v", kuisID, siswaID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan hasil kuis")
	}

	return c.JSON(dto.SubmitKuisResponse{
		CorrectCount:   hasil.CorrectCount,
		TotalQuestions: hasil.TotalQuestions,
		StarsEarned:    hasil.StarsEarned,
		Message: fmt.Sprintf("Kamu menjawab %d dari %d soal dengan benar dan mendapat %d bintang ⭐",
			hasil.CorrectCount, hasil.TotalQuestions, hasil.StarsEarned),
	})
}

// =============================
// 📊 Statistik + Leaderboard per Materi
// =============================
func (ctrl *KuisUserController) GetStatistikKuis(c *fiber.Ctx) error {
	materiID, err := uuid.Parse(c.Params("materiId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "materi_id tidak valid")
	}

	hasil, err := ctrl.Statistik.GetStatistikKuis(c.UserContext(), materiID)
	if err != nil {
		if errors.Is(err, service.ErrMateriTidakDitemukan) {
			return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		log.Printf("[ERROR] GetStatistikKuis gagal. materi=%s err=%v", materiID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil statistik kuis")
	}

	return c.JSON(hasil)
}
