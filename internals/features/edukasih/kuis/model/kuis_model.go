// file: internals/features/edukasih/kuis/model/kuis_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
=========================================================

	KUIS
	- 1 kuis = 1 materi (unique)
	- pertanyaan disimpan utuh sebagai array JSONB; edit soal
	  selalu replace seluruh array (tidak ada patch per-soal)

=========================================================
*/

// Satu butir soal pilihan ganda
type PertanyaanKuis struct {
	Pertanyaan         string   `json:"pertanyaan"`
	Gambar             string   `json:"gambar,omitempty"`
	Opsi               []string `json:"opsi"`
	IndeksJawabanBenar int      `json:"indeks_jawaban_benar"`
}

type KuisModel struct {
	KuisID         uuid.UUID      `gorm:"column:kuis_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"kuis_id"`
	KuisMateriID   uuid.UUID      `gorm:"column:kuis_materi_id;type:uuid;not null;uniqueIndex" json:"kuis_materi_id"`
	KuisPertanyaan datatypes.JSON `gorm:"column:kuis_pertanyaan;type:jsonb;not null;default:'[]'::jsonb" json:"kuis_pertanyaan"`

	KuisCreatedAt time.Time `gorm:"column:kuis_created_at;autoCreateTime" json:"kuis_created_at"`
	KuisUpdatedAt time.Time `gorm:"column:kuis_updated_at;autoUpdateTime" json:"kuis_updated_at"`
}

func (KuisModel) TableName() string { return "kuis" }

// ------------------------
// Helpers
// ------------------------

// DaftarPertanyaan unmarshal kolom JSONB ke slice soal.
// Kolom NULL/kosong dianggap kuis tanpa soal (bukan error).
func (m *KuisModel) DaftarPertanyaan() ([]PertanyaanKuis, error) {
	if len(m.KuisPertanyaan) == 0 {
		return []PertanyaanKuis{}, nil
	}
	var soal []PertanyaanKuis
	if err := json.Unmarshal(m.KuisPertanyaan, &soal); err != nil {
		return nil, err
	}
	if soal == nil {
		soal = []PertanyaanKuis{}
	}
	return soal, nil
}

// SetPertanyaan validasi lalu simpan seluruh array soal (replace utuh)
func (m *KuisModel) SetPertanyaan(soal []PertanyaanKuis) error {
	if len(soal) == 0 {
		return errors.New("kuis minimal punya 1 soal")
	}
	for _, s := range soal {
		if strings.TrimSpace(s.Pertanyaan) == "" {
			return errors.New("teks pertanyaan tidak boleh kosong")
		}
		if len(s.Opsi) < 2 {
			return errors.New("setiap soal minimal 2 opsi")
		}
		if s.IndeksJawabanBenar < 0 || s.IndeksJawabanBenar >= len(s.Opsi) {
			return errors.New("indeks_jawaban_benar di luar jangkauan opsi")
		}
	}
	b, _ := json.Marshal(soal)
	m.KuisPertanyaan = datatypes.JSON(b)
	return nil
}
