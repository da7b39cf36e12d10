package dto

import (
	"github.com/google/uuid"

	"edukasih_backend/internals/features/edukasih/materi/model"
)

// ============================
// Request DTO
// ============================

type CreateMateriRequest struct {
	MateriJudul     string  `json:"materi_judul" validate:"required,max=255"`
	MateriDeskripsi string  `json:"materi_deskripsi"`
	MateriJenjang   string  `json:"materi_jenjang" validate:"required,oneof=TK SD SMP SMA"`
	MateriKategori  string  `json:"materi_kategori" validate:"required,oneof=akademik vokasional bina_diri"`
	MateriTipeMedia string  `json:"materi_tipe_media" validate:"required,oneof=video gambar dokumen tautan"`
	MateriMediaURL  string  `json:"materi_media_url" validate:"omitempty,url"`
	MateriSiswaID   *string `json:"materi_siswa_id" validate:"omitempty,uuid"`
}

type UpdateMateriRequest struct {
	MateriJudul     *string `json:"materi_judul" validate:"omitempty,max=255"`
	MateriDeskripsi *string `json:"materi_deskripsi"`
	MateriJenjang   *string `json:"materi_jenjang" validate:"omitempty,oneof=TK SD SMP SMA"`
	MateriKategori  *string `json:"materi_kategori" validate:"omitempty,oneof=akademik vokasional bina_diri"`
	MateriTipeMedia *string `json:"materi_tipe_media" validate:"omitempty,oneof=video gambar dokumen tautan"`
	MateriMediaURL  *string `json:"materi_media_url" validate:"omitempty,url"`
}

func (r *CreateMateriRequest) KeModel() (model.MateriModel, error) {
	m := model.MateriModel{
		MateriJudul:     r.MateriJudul,
		MateriDeskripsi: r.MateriDeskripsi,
		MateriJenjang:   model.Jenjang(r.MateriJenjang),
		MateriKategori:  model.KategoriMateri(r.MateriKategori),
		MateriTipeMedia: r.MateriTipeMedia,
		MateriMediaURL:  r.MateriMediaURL,
	}
	if r.MateriSiswaID != nil && *r.MateriSiswaID != "" {
		id, err := uuid.Parse(*r.MateriSiswaID)
		if err != nil {
			return model.MateriModel{}, err
		}
		m.MateriSiswaID = &id
	}
	return m, nil
}
