package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soalValid() []PertanyaanKuis {
	return []PertanyaanKuis{
		{Pertanyaan: "Warna daun?", Opsi: []string{"hijau", "biru"}, IndeksJawabanBenar: 0},
		{Pertanyaan: "2+2?", Opsi: []string{"3", "4", "5"}, IndeksJawabanBenar: 1},
	}
}

func TestSetPertanyaan(t *testing.T) {
	t.Run("valid: tersimpan dan bisa dibaca balik", func(t *testing.T) {
		var kuis KuisModel
		require.NoError(t, kuis.SetPertanyaan(soalValid()))

		soal, err := kuis.DaftarPertanyaan()
		require.NoError(t, err)
		require.Len(t, soal, 2)
		assert.Equal(t, 1, soal[1].IndeksJawabanBenar)
	})

	t.Run("tanpa soal ditolak", func(t *testing.T) {
		var kuis KuisModel
		assert.Error(t, kuis.SetPertanyaan(nil))
	})

	t.Run("pertanyaan kosong ditolak", func(t *testing.T) {
		soal := soalValid()
		soal[0].Pertanyaan = "   "
		var kuis KuisModel
		assert.Error(t, kuis.SetPertanyaan(soal))
	})

	t.Run("kurang dari 2 opsi ditolak", func(t *testing.T) {
		soal := soalValid()
		soal[0].Opsi = []string{"satu"}
		var kuis KuisModel
		assert.Error(t, kuis.SetPertanyaan(soal))
	})

	t.Run("indeks kunci di luar opsi ditolak", func(t *testing.T) {
		soal := soalValid()
		soal[1].IndeksJawabanBenar = 3
		var kuis KuisModel
		assert.Error(t, kuis.SetPertanyaan(soal))
	})
}

func TestDaftarPertanyaanKosong(t *testing.T) {
	var kuis KuisModel

	soal, err := kuis.DaftarPertanyaan()
	require.NoError(t, err)
	assert.Empty(t, soal)
}

func TestParsePercobaan(t *testing.T) {
	t.Run("kolom NULL dianggap log kosong", func(t *testing.T) {
		percobaan, err := ParsePercobaan(nil)
		require.NoError(t, err)
		assert.Empty(t, percobaan)
	})

	t.Run("json korup jadi error", func(t *testing.T) {
		_, err := ParsePercobaan([]byte("{bukan json"))
		assert.Error(t, err)
	})
}
