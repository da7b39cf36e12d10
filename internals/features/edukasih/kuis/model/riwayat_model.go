// file: internals/features/edukasih/kuis/model/riwayat_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
=========================================================

	RIWAYAT SISWA × MATERI
	1 row = 1 siswa × 1 materi
	- riwayat  : semua percobaan kuis dalam JSONB (append-only)
	- skor     : skor bintang terbaik yang pernah dicapai (0..3),
	             monoton tidak pernah turun
	- tanggal  : waktu percobaan terakhir (naik terus walau skor
	             tidak membaik)

=========================================================
*/

// Satu percobaan kuis (audit trail, tidak pernah diubah setelah append)
type PercobaanKuis struct {
	Skor    int       `json:"skor"`    // 0..3
	Jawaban []int     `json:"jawaban"` // indeks opsi per soal, -1 = tidak dijawab
	Tanggal time.Time `json:"tanggal"`
}

type RiwayatMateriModel struct {
	RiwayatID       uuid.UUID `gorm:"column:riwayat_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"riwayat_id"`
	RiwayatSiswaID  uuid.UUID `gorm:"column:riwayat_siswa_id;type:uuid;not null;uniqueIndex:uq_riwayat_siswa_materi,priority:1" json:"riwayat_siswa_id"`
	RiwayatMateriID uuid.UUID `gorm:"column:riwayat_materi_id;type:uuid;not null;uniqueIndex:uq_riwayat_siswa_materi,priority:2;index" json:"riwayat_materi_id"`

	RiwayatSkor    int       `gorm:"column:riwayat_skor;not null;default:0" json:"riwayat_skor"`
	RiwayatTanggal time.Time `gorm:"column:riwayat_tanggal;type:timestamptz;not null" json:"riwayat_tanggal"`

	// Log percobaan lengkap (termasuk jawaban) dalam JSONB
	RiwayatPercobaan datatypes.JSON `gorm:"column:riwayat_percobaan;type:jsonb;not null;default:'[]'::jsonb" json:"riwayat_percobaan"`

	RiwayatCreatedAt time.Time `gorm:"column:riwayat_created_at;autoCreateTime" json:"riwayat_created_at"`
	RiwayatUpdatedAt time.Time `gorm:"column:riwayat_updated_at;autoUpdateTime" json:"riwayat_updated_at"`
}

func (RiwayatMateriModel) TableName() string { return "siswa_materi_histories" }

// ------------------------
// Helpers
// ------------------------

// ParsePercobaan unmarshal log percobaan mentah dari JSONB.
// Record lama tanpa log detail (kolom NULL) dianggap log kosong,
// bukan error.
func ParsePercobaan(raw datatypes.JSON) ([]PercobaanKuis, error) {
	if len(raw) == 0 {
		return []PercobaanKuis{}, nil
	}
	var percobaan []PercobaanKuis
	if err := json.Unmarshal(raw, &percobaan); err != nil {
		return nil, err
	}
	if percobaan == nil {
		percobaan = []PercobaanKuis{}
	}
	return percobaan, nil
}

func (m *RiwayatMateriModel) DaftarPercobaan() ([]PercobaanKuis, error) {
	return ParsePercobaan(m.RiwayatPercobaan)
}

// TambahPercobaan append percobaan baru ke log + update cache:
// - skor hanya naik jika percobaan baru LEBIH BESAR (max monoton)
// - tanggal selalu di-refresh ke percobaan terbaru
func (m *RiwayatMateriModel) TambahPercobaan(p PercobaanKuis) error {
	percobaan, err := m.DaftarPercobaan()
	if err != nil {
		return err
	}
	percobaan = append(percobaan, p)

	b, err := json.Marshal(percobaan)
	if err != nil {
		return err
	}
	m.RiwayatPercobaan = datatypes.JSON(b)

	if p.Skor > m.RiwayatSkor {
		m.RiwayatSkor = p.Skor
	}
	m.RiwayatTanggal = p.Tanggal
	return nil
}
