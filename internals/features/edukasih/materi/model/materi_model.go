// file: internals/features/edukasih/materi/model/materi_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* ============================================================================
   ENUM-like: jenjang ('TK' | 'SD' | 'SMP' | 'SMA')
============================================================================ */
type Jenjang string

const (
	JenjangTK  Jenjang = "TK"
	JenjangSD  Jenjang = "SD"
	JenjangSMP Jenjang = "SMP"
	JenjangSMA Jenjang = "SMA"
)

func (j Jenjang) String() string { return string(j) }
func (j Jenjang) Valid() bool {
	return j == JenjangTK || j == JenjangSD || j == JenjangSMP || j == JenjangSMA
}

func (j *Jenjang) Scan(value any) error {
	if value == nil {
		*j = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*j = Jenjang(v)
	case []byte:
		*j = Jenjang(string(v))
	default:
		return fmt.Errorf("unsupported type for Jenjang: %T", value)
	}
	if !j.Valid() {
		return fmt.Errorf("invalid Jenjang: %q", *j)
	}
	return nil
}

func (j Jenjang) Value() (driver.Value, error) {
	if j == "" {
		return nil, nil
	}
	if !j.Valid() {
		return nil, fmt.Errorf("invalid Jenjang: %q", j)
	}
	return string(j), nil
}

/* ============================================================================
   ENUM-like: kategori materi
============================================================================ */
type KategoriMateri string

const (
	KategoriAkademik   KategoriMateri = "akademik"
	KategoriVokasional KategoriMateri = "vokasional"
	KategoriBinaDiri   KategoriMateri = "bina_diri"
)

func (k KategoriMateri) Valid() bool {
	switch k {
	case KategoriAkademik, KategoriVokasional, KategoriBinaDiri:
		return true
	}
	return false
}

/* ============================================================================
   MODEL: materi
   - materi_siswa_id opsional: materi khusus untuk satu siswa; NULL = global
============================================================================ */
type MateriModel struct {
	MateriID        uuid.UUID      `gorm:"column:materi_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"materi_id"`
	MateriJudul     string         `gorm:"column:materi_judul;type:varchar(255);not null" json:"materi_judul"`
	MateriDeskripsi string         `gorm:"column:materi_deskripsi;type:text" json:"materi_deskripsi"`
	MateriJenjang   Jenjang        `gorm:"column:materi_jenjang;type:varchar(3);not null;index" json:"materi_jenjang"`
	MateriKategori  KategoriMateri `gorm:"column:materi_kategori;type:varchar(16);not null" json:"materi_kategori"`
	MateriTipeMedia string         `gorm:"column:materi_tipe_media;type:varchar(16);not null" json:"materi_tipe_media"`
	MateriMediaURL  string         `gorm:"column:materi_media_url;type:text" json:"materi_media_url"`
	MateriSiswaID   *uuid.UUID     `gorm:"column:materi_siswa_id;type:uuid" json:"materi_siswa_id,omitempty"`

	MateriCreatedAt time.Time `gorm:"column:materi_created_at;autoCreateTime" json:"materi_created_at"`
	MateriUpdatedAt time.Time `gorm:"column:materi_updated_at;autoUpdateTime" json:"materi_updated_at"`
}

func (MateriModel) TableName() string { return "materi" }
