package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func materiValid() CreateMateriRequest {
	return CreateMateriRequest{
		MateriJudul:     "Mengenal warna",
		MateriJenjang:   "SD",
		MateriKategori:  "akademik",
		MateriTipeMedia: "video",
	}
}

func TestCreateMateriTipeMedia(t *testing.T) {
	for _, tipe := range []string{"video", "gambar", "dokumen", "tautan"} {
		t.Run(tipe, func(t *testing.T) {
			body := materiValid()
			body.MateriTipeMedia = tipe
			assert.NoError(t, validate.Struct(&body))
		})
	}

	t.Run("tipe di luar daftar ditolak", func(t *testing.T) {
		body := materiValid()
		body.MateriTipeMedia = "podcast"
		assert.Error(t, validate.Struct(&body))
	})
}

func TestUpdateMateriTipeMedia(t *testing.T) {
	tautan := "tautan"
	body := UpdateMateriRequest{MateriTipeMedia: &tautan}
	assert.NoError(t, validate.Struct(&body))

	salah := "siaran"
	body = UpdateMateriRequest{MateriTipeMedia: &salah}
	assert.Error(t, validate.Struct(&body))
}

func TestCreateMateriKeModel(t *testing.T) {
	body := materiValid()
	siswaID := "b3b52cf1-64d4-4dcf-9a2a-111111111111"
	body.MateriSiswaID = &siswaID

	m, err := body.KeModel()
	require.NoError(t, err)
	require.NotNil(t, m.MateriSiswaID)
	assert.Equal(t, siswaID, m.MateriSiswaID.String())

	salah := "bukan-uuid"
	body.MateriSiswaID = &salah
	_, err = body.KeModel()
	assert.Error(t, err)
}
