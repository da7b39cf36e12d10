package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edukasih_backend/internals/constants"
	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	"edukasih_backend/internals/features/edukasih/siswa/dto"
	"edukasih_backend/internals/features/edukasih/siswa/model"
	helper "edukasih_backend/internals/helpers"
)

type SiswaUserController struct {
	DB *gorm.DB
}

func NewSiswaUserController(db *gorm.DB) *SiswaUserController {
	return &SiswaUserController{DB: db}
}

// Siswa hanya boleh lihat record miliknya sendiri;
// teacher/admin bebas.
func bolehAkses(c *fiber.Ctx, targetID uuid.UUID) bool {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleAdmin || role == constants.RoleTeacher {
		return true
	}
	userID, _ := c.Locals("user_id").(string)
	return userID == targetID.String()
}

// =============================
// 🔍 Get Siswa (record sendiri)
// =============================
func (ctrl *SiswaUserController) GetSiswa(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "siswa_id tidak valid")
	}
	if !bolehAkses(c, id) {
		return fiber.NewError(fiber.StatusForbidden, "Tidak boleh mengakses data siswa lain")
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
// 📜 Riwayat materi seorang siswa
// =============================
func (ctrl *SiswaUserController) GetRiwayatSiswa(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "siswa_id tidak valid")
	}
	if !bolehAkses(c, id) {
		return fiber.NewError(fiber.StatusForbidden, "Tidak boleh mengakses data siswa lain")
	}

	var rows []struct {
		RiwayatMateriID  uuid.UUID      `gorm:"column:riwayat_materi_id"`
		MateriJudul      string         `gorm:"column:materi_judul"`
		RiwayatSkor      int            `gorm:"column:riwayat_skor"`
		RiwayatTanggal   time.Time      `gorm:"column:riwayat_tanggal"`
		RiwayatPercobaan datatypes.JSON `gorm:"column:riwayat_percobaan"`
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("siswa_materi_histories AS h").
		Select("h.riwayat_materi_id, m.materi_judul, h.riwayat_skor, h.riwayat_tanggal, h.riwayat_percobaan").
		Joins("JOIN materi AS m ON m.materi_id = h.riwayat_materi_id").
		Where("h.riwayat_siswa_id = ?", id).
		Order("h.riwayat_tanggal DESC").
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil riwayat siswa %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	type entriRiwayat struct {
		MateriID           string                 `json:"materi_id"`
		MateriJudul        string                 `json:"materi_judul"`
		SkorTerbaik        int                    `json:"skor_terbaik"`
		TerakhirDikerjakan time.Time              `json:"terakhir_dikerjakan"`
		Percobaan          []kmodel.PercobaanKuis `json:"percobaan"`
	}

	riwayat := make([]entriRiwayat, 0, len(rows))
	for _, r := range rows {
		percobaan, err := kmodel.ParsePercobaan(r.RiwayatPercobaan)
		if err != nil {
			log.Printf("[WARN] Riwayat korup, dilewati. siswa=%s materi=%s err=%v", id, r.RiwayatMateriID, err)
			continue
		}
		riwayat = append(riwayat, entriRiwayat{
			MateriID:           r.RiwayatMateriID.String(),
			MateriJudul:        r.MateriJudul,
			SkorTerbaik:        r.RiwayatSkor,
			TerakhirDikerjakan: r.RiwayatTanggal,
			Percobaan:          percobaan,
		})
	}

	return helper.Success(c, "Berhasil ambil riwayat siswa", riwayat)
}
