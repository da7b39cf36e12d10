package dto

import (
	"time"

	"edukasih_backend/internals/features/edukasih/kuis/model"
)

// ============================
// Create / Replace Request DTO
// ============================

type PertanyaanKuisRequest struct {
	Pertanyaan         string   `json:"pertanyaan" validate:"required"`
	Gambar             string   `json:"gambar"`
	Opsi               []string `json:"opsi" validate:"required,min=2,dive,required"`
	IndeksJawabanBenar *int     `json:"indeks_jawaban_benar" validate:"required,min=0"`
}

type SimpanKuisRequest struct {
	MateriID   string                  `json:"materi_id" validate:"required,uuid"`
	Pertanyaan []PertanyaanKuisRequest `json:"pertanyaan" validate:"required,min=1,dive"`
}

func (r *SimpanKuisRequest) KePertanyaan() []model.PertanyaanKuis {
	soal := make([]model.PertanyaanKuis, 0, len(r.Pertanyaan))
	for _, p := range r.Pertanyaan {
		idx := 0
		if p.IndeksJawabanBenar != nil {
			idx = *p.IndeksJawabanBenar
		}
		soal = append(soal, model.PertanyaanKuis{
			Pertanyaan:         p.Pertanyaan,
			Gambar:             p.Gambar,
			Opsi:               p.Opsi,
			IndeksJawabanBenar: idx,
		})
	}
	return soal
}

// ============================
// Submit Request DTO
// ============================

// JawabanSiswa pakai pointer supaya null dari client terbaca
// sebagai "tidak dijawab", bukan 0 (kontrak input ter-type,
// normalisasi sekali di boundary)
type SubmitKuisRequest struct {
	SiswaID      *string `json:"siswa_id" validate:"omitempty,uuid"`
	KuisID       string  `json:"kuis_id" validate:"required,uuid"`
	JawabanSiswa []*int  `json:"jawaban_siswa" validate:"required"`
}

type SubmitKuisResponse struct {
	CorrectCount   int    `json:"correct_count"`
	TotalQuestions int    `json:"total_questions"`
	StarsEarned    int    `json:"stars_earned"`
	Message        string `json:"message"`
}

// ============================
// Response DTO
// ============================

type KuisDTO struct {
	KuisID        string                 `json:"kuis_id"`
	KuisMateriID  string                 `json:"kuis_materi_id"`
	Pertanyaan    []model.PertanyaanKuis `json:"pertanyaan"`
	KuisCreatedAt time.Time              `json:"kuis_created_at"`
	KuisUpdatedAt time.Time              `json:"kuis_updated_at"`
}

// ============================
// Converter
// ============================

func ToKuisDTO(m model.KuisModel) (KuisDTO, error) {
	soal, err := m.DaftarPertanyaan()
	if err != nil {
		return KuisDTO{}, err
	}
	return KuisDTO{
		KuisID:        m.KuisID.String(),
		KuisMateriID:  m.KuisMateriID.String(),
		Pertanyaan:    soal,
		KuisCreatedAt: m.KuisCreatedAt,
		KuisUpdatedAt: m.KuisUpdatedAt,
	}, nil
}
