package dto

import (
	"time"

	materimodel "edukasih_backend/internals/features/edukasih/materi/model"
	"edukasih_backend/internals/features/edukasih/siswa/model"
)

// ============================
// Request DTO
// ============================

type CreateSiswaRequest struct {
	SiswaUsername string `json:"siswa_username" validate:"required,min=3,max=50"`
	SiswaNama     string `json:"siswa_nama" validate:"required,max=100"`
	SiswaPassword string `json:"siswa_password" validate:"required,min=6"`
	SiswaRole     string `json:"siswa_role" validate:"omitempty,oneof=student teacher admin"`
	SiswaKelas    string `json:"siswa_kelas" validate:"max=30"`
	SiswaJenjang  string `json:"siswa_jenjang" validate:"required,oneof=TK SD SMP SMA"`
}

// Semua field opsional: hanya yang dikirim yang diubah
type UpdateSiswaRequest struct {
	SiswaNama     *string `json:"siswa_nama" validate:"omitempty,max=100"`
	SiswaPassword *string `json:"siswa_password" validate:"omitempty,min=6"`
	SiswaRole     *string `json:"siswa_role" validate:"omitempty,oneof=student teacher admin"`
	SiswaKelas    *string `json:"siswa_kelas" validate:"omitempty,max=30"`
	SiswaJenjang  *string `json:"siswa_jenjang" validate:"omitempty,oneof=TK SD SMP SMA"`
}

// ============================
// Response DTO (password tidak pernah keluar)
// ============================

type SiswaDTO struct {
	SiswaID            string              `json:"siswa_id"`
	SiswaUsername      string              `json:"siswa_username"`
	SiswaNama          string              `json:"siswa_nama"`
	SiswaRole          string              `json:"siswa_role"`
	SiswaKelas         string              `json:"siswa_kelas"`
	SiswaJenjang       materimodel.Jenjang `json:"siswa_jenjang"`
	SiswaSkorBintang   int                 `json:"siswa_skor_bintang"`
	SiswaTerakhirLogin *time.Time          `json:"siswa_terakhir_login,omitempty"`
	SiswaCreatedAt     time.Time           `json:"siswa_created_at"`
}

func ToSiswaDTO(m model.SiswaModel) SiswaDTO {
	return SiswaDTO{
		SiswaID:            m.SiswaID.String(),
		SiswaUsername:      m.SiswaUsername,
		SiswaNama:          m.SiswaNama,
		SiswaRole:          m.SiswaRole,
		SiswaKelas:         m.SiswaKelas,
		SiswaJenjang:       m.SiswaJenjang,
		SiswaSkorBintang:   m.SiswaSkorBintang,
		SiswaTerakhirLogin: m.SiswaTerakhirLogin,
		SiswaCreatedAt:     m.SiswaCreatedAt,
	}
}

func ToSiswaDTOs(models []model.SiswaModel) []SiswaDTO {
	out := make([]SiswaDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToSiswaDTO(m))
	}
	return out
}
