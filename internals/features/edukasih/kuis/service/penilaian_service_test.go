package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
)

func intPtr(v int) *int { return &v }

// waktu: timestamp deterministik berurutan untuk fixture
func waktu(hari int) time.Time {
	return time.Date(2026, 1, hari, 0, 0, 0, 0, time.UTC)
}

func TestNilaiBintang(t *testing.T) {
	tests := []struct {
		nama  string
		benar int
		total int
		want  int
	}{
		{"semua benar 1 soal", 1, 1, 3},
		{"1 dari 5", 1, 5, 1},       // 0.6 → 1
		{"3 dari 7", 3, 7, 1},       // 1.28 → 1
		{"4 dari 7", 4, 7, 2},       // 1.71 → 2
		{"setengah tepat", 1, 2, 2}, // 1.5 → 2 (half away from zero)
		{"nol benar", 0, 10, 0},
		{"kuis kosong", 0, 0, 0},
		{"semua benar", 10, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.nama, func(t *testing.T) {
			assert.Equal(t, tt.want, NilaiBintang(tt.benar, tt.total))
		})
	}
}

func TestNormalisasiJawaban(t *testing.T) {
	t.Run("null jadi -1", func(t *testing.T) {
		got := NormalisasiJawaban([]*int{intPtr(2), nil, intPtr(0)}, 3)
		assert.Equal(t, []int{2, -1, 0}, got)
	})

	t.Run("kekurangan jawaban dianggap tidak dijawab", func(t *testing.T) {
		got := NormalisasiJawaban([]*int{intPtr(1)}, 4)
		assert.Equal(t, []int{1, -1, -1, -1}, got)
	})

	t.Run("kelebihan jawaban dibuang", func(t *testing.T) {
		got := NormalisasiJawaban([]*int{intPtr(0), intPtr(1), intPtr(2)}, 2)
		assert.Equal(t, []int{0, 1}, got)
	})

	t.Run("input nil aman", func(t *testing.T) {
		got := NormalisasiJawaban(nil, 2)
		assert.Equal(t, []int{-1, -1}, got)
	})
}

func TestHitungSkor(t *testing.T) {
	soal := []kmodel.PertanyaanKuis{
		{Pertanyaan: "a", Opsi: []string{"x", "y"}, IndeksJawabanBenar: 0},
		{Pertanyaan: "b", Opsi: []string{"x", "y"}, IndeksJawabanBenar: 1},
		{Pertanyaan: "c", Opsi: []string{"x", "y", "z"}, IndeksJawabanBenar: 2},
	}

	t.Run("sebagian benar", func(t *testing.T) {
		hasil := HitungSkor(soal, []int{0, 0, 2})
		assert.Equal(t, 2, hasil.CorrectCount)
		assert.Equal(t, 3, hasil.TotalQuestions)
		assert.Equal(t, 2, hasil.StarsEarned)
	})

	t.Run("tidak dijawab tidak pernah benar", func(t *testing.T) {
		hasil := HitungSkor(soal, []int{-1, -1, -1})
		assert.Equal(t, 0, hasil.CorrectCount)
		assert.Equal(t, 0, hasil.StarsEarned)
	})

	t.Run("jawaban lebih pendek dari soal", func(t *testing.T) {
		hasil := HitungSkor(soal, []int{0})
		assert.Equal(t, 1, hasil.CorrectCount)
		assert.Equal(t, 3, hasil.TotalQuestions)
	})

	t.Run("kuis tanpa soal", func(t *testing.T) {
		hasil := HitungSkor(nil, []int{0, 1})
		assert.Equal(t, 0, hasil.CorrectCount)
		assert.Equal(t, 0, hasil.TotalQuestions)
		assert.Equal(t, 0, hasil.StarsEarned)
	})
}

func TestTambahPercobaan(t *testing.T) {
	t.Run("skor cache monoton naik", func(t *testing.T) {
		var riwayat kmodel.RiwayatMateriModel

		require.NoError(t, riwayat.TambahPercobaan(kmodel.PercobaanKuis{Skor: 2, Jawaban: []int{0, 1}, Tanggal: waktu(1)}))
		assert.Equal(t, 2, riwayat.RiwayatSkor)

		// percobaan lebih jelek: log bertambah, cache tidak turun
		require.NoError(t, riwayat.TambahPercobaan(kmodel.PercobaanKuis{Skor: 1, Jawaban: []int{0, 0}, Tanggal: waktu(2)}))
		assert.Equal(t, 2, riwayat.RiwayatSkor)
		assert.Equal(t, waktu(2), riwayat.RiwayatTanggal)

		require.NoError(t, riwayat.TambahPercobaan(kmodel.PercobaanKuis{Skor: 3, Jawaban: []int{1, 1}, Tanggal: waktu(3)}))
		assert.Equal(t, 3, riwayat.RiwayatSkor)

		percobaan, err := riwayat.DaftarPercobaan()
		require.NoError(t, err)
		assert.Len(t, percobaan, 3)
	})

	// skor_bintang = SUM(riwayat_skor) per siswa; SUM-nya dikerjakan
	// SegarkanSkorBintang di SQL, di sini dikunci sisi in-memory-nya:
	// tiap riwayat_skor memang max dari log percobaannya
	t.Run("cache per materi selalu max log, siap dijumlahkan", func(t *testing.T) {
		var materiA, materiB kmodel.RiwayatMateriModel

		require.NoError(t, materiA.TambahPercobaan(kmodel.PercobaanKuis{Skor: 1, Tanggal: waktu(1)}))
		require.NoError(t, materiB.TambahPercobaan(kmodel.PercobaanKuis{Skor: 3, Tanggal: waktu(2)}))
		require.NoError(t, materiA.TambahPercobaan(kmodel.PercobaanKuis{Skor: 2, Tanggal: waktu(3)}))
		require.NoError(t, materiB.TambahPercobaan(kmodel.PercobaanKuis{Skor: 1, Tanggal: waktu(4)}))

		totalBest := 0
		for _, riwayat := range []*kmodel.RiwayatMateriModel{&materiA, &materiB} {
			percobaan, err := riwayat.DaftarPercobaan()
			require.NoError(t, err)
			best := 0
			for _, p := range percobaan {
				if p.Skor > best {
					best = p.Skor
				}
			}
			assert.Equal(t, best, riwayat.RiwayatSkor)
			totalBest += riwayat.RiwayatSkor
		}
		assert.Equal(t, 5, totalBest) // 2 (materi A) + 3 (materi B)
	})

	t.Run("record lama tanpa log tetap bisa append", func(t *testing.T) {
		riwayat := kmodel.RiwayatMateriModel{RiwayatSkor: 1}
		riwayat.RiwayatPercobaan = nil

		require.NoError(t, riwayat.TambahPercobaan(kmodel.PercobaanKuis{Skor: 2, Tanggal: waktu(5)}))
		percobaan, err := riwayat.DaftarPercobaan()
		require.NoError(t, err)
		assert.Len(t, percobaan, 1)
		assert.Equal(t, 2, riwayat.RiwayatSkor)
	})
}
