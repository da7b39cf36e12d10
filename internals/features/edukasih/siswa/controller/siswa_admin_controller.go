package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	materimodel "edukasih_backend/internals/features/edukasih/materi/model"
	"edukasih_backend/internals/features/edukasih/siswa/dto"
	"edukasih_backend/internals/features/edukasih/siswa/model"
	helper "edukasih_backend/internals/helpers"
)

var validate = validator.New()

type SiswaAdminController struct {
	DB *gorm.DB
}

func NewSiswaAdminController(db *gorm.DB) *SiswaAdminController {
	return &SiswaAdminController{DB: db}
}

// =============================
// ➕ Create Siswa
// =============================
func (ctrl *SiswaAdminController) CreateSiswa(c *fiber.Ctx) error {
	var body dto.CreateSiswaRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.SiswaPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	role := body.SiswaRole
	if role == "" {
		role = "student"
	}

	siswa := model.SiswaModel{
		SiswaUsername: strings.ToLower(strings.TrimSpace(body.SiswaUsername)),
		SiswaNama:     body.SiswaNama,
		SiswaRole:     role,
		SiswaKelas:    body.SiswaKelas,
		SiswaJenjang:  materimodel.Jenjang(body.SiswaJenjang),
		SiswaPassword: string(hash),
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&siswa).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fiber.NewError(fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Printf("[ERROR] Gagal create siswa: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}

	log.Printf("[SUCCESS] Siswa dibuat. id=%s username=%s", siswa.SiswaID, siswa.SiswaUsername)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", dto.ToSiswaDTO(siswa))
}

// =============================
// 🔍 List Siswa (pagination + filter jenjang)
// =============================
func (ctrl *SiswaAdminController) GetAllSiswa(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.SiswaModel{})

	if jenjang := strings.TrimSpace(c.Query("jenjang")); jenjang != "" {
		j := materimodel.Jenjang(strings.ToUpper(jenjang))
		if !j.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "jenjang tidak valid (TK/SD/SMP/SMA)")
		}
		tx = tx.Where("siswa_jenjang = ?", j)
	}
	if kelas := strings.TrimSpace(c.Query("kelas")); kelas != "" {
		tx = tx.Where("siswa_kelas = ?", kelas)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var daftar []model.SiswaModel
	if err := tx.
		Order("siswa_nama ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&daftar).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}

	return helper.Success(c, "Berhasil ambil daftar siswa", fiber.Map{
		"siswa":      dto.ToSiswaDTOs(daftar),
		"pagination": helper.BuildPagination(total, paging, len(daftar)),
	})
}

// =============================
// 🔍 Get Siswa by ID
// =============================
func (ctrl *SiswaAdminController) GetSiswaByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "siswa_id tidak valid")
	}

	var siswa model.SiswaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&siswa, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	return helper.Success(c, "Berhasil ambil siswa", dto.ToSiswaDTO(siswa))
}

// =============================
// ✏️ Update Siswa (partial)
// =============================
func (ctrl *SiswaAdminController) UpdateSiswa(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "siswa_id tidak valid")
	}

	var body dto.UpdateSiswaRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var siswa model.SiswaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&siswa, "siswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	if body.SiswaNama != nil {
		siswa.SiswaNama = *body.SiswaNama
	}
	if body.SiswaRole != nil {
		siswa.SiswaRole = *body.SiswaRole
	}
	if body.SiswaKelas != nil {
		siswa.SiswaKelas = *body.SiswaKelas
	}
	if body.SiswaJenjang != nil {
		siswa.SiswaJenjang = materimodel.Jenjang(*body.SiswaJenjang)
	}
	if body.SiswaPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*body.SiswaPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
		}
		siswa.SiswaPassword = string(hash)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&siswa).Error; err != nil {
		log.Printf("[ERROR] Gagal update siswa %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan perubahan siswa")
	}

	return helper.Success(c, "Siswa berhasil diperbarui", dto.ToSiswaDTO(siswa))
}

// =============================
// ❌ Delete Siswa (riwayat ikut terhapus)
// =============================
func (ctrl *SiswaAdminController) DeleteSiswa(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "siswa_id tidak valid")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&kmodel.RiwayatMateriModel{}, "riwayat_siswa_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.SiswaModel{}, "siswa_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal delete siswa %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}

	log.Printf("[SUCCESS] Siswa dihapus. id=%s", id)
	return helper.Success(c, "Siswa berhasil dihapus", nil)
}
