// file: internals/features/edukasih/siswa/model/siswa_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	materimodel "edukasih_backend/internals/features/edukasih/materi/model"
)

/*
=========================================================

	SISWA (juga menampung akun teacher/admin lewat kolom role)
	- siswa_skor_bintang: cache denormalisasi, jumlah skor terbaik
	  dari seluruh riwayat materi. Dihitung ulang penuh setiap
	  ada submit kuis (self-healing).

=========================================================
*/
type SiswaModel struct {
	SiswaID       uuid.UUID          `gorm:"column:siswa_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"siswa_id"`
	SiswaUsername string             `gorm:"column:siswa_username;type:varchar(50);not null;uniqueIndex" json:"siswa_username"`
	SiswaNama     string             `gorm:"column:siswa_nama;type:varchar(100);not null" json:"siswa_nama"`
	SiswaRole     string             `gorm:"column:siswa_role;type:varchar(10);not null;default:'student'" json:"siswa_role"`
	SiswaKelas    string             `gorm:"column:siswa_kelas;type:varchar(30)" json:"siswa_kelas"`
	SiswaJenjang  materimodel.Jenjang `gorm:"column:siswa_jenjang;type:varchar(3);index" json:"siswa_jenjang"`

	// Hash bcrypt, tidak pernah ikut response
	SiswaPassword string `gorm:"column:siswa_password;type:varchar(100);not null" json:"-"`

	SiswaSkorBintang    int        `gorm:"column:siswa_skor_bintang;not null;default:0" json:"siswa_skor_bintang"`
	SiswaTerakhirLogin  *time.Time `gorm:"column:siswa_terakhir_login;type:timestamptz" json:"siswa_terakhir_login,omitempty"`

	SiswaCreatedAt time.Time `gorm:"column:siswa_created_at;autoCreateTime" json:"siswa_created_at"`
	SiswaUpdatedAt time.Time `gorm:"column:siswa_updated_at;autoUpdateTime" json:"siswa_updated_at"`
}

func (SiswaModel) TableName() string { return "siswa" }
