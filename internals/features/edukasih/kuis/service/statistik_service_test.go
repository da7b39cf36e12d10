package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	mmodel "edukasih_backend/internals/features/edukasih/materi/model"
)

func percobaanJSON(t *testing.T, percobaan ...kmodel.PercobaanKuis) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(percobaan)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

// Dua siswa beda jenjang pada materi yang sama: populasi statistik
// siswa hanya berisi siswa se-jenjang, populasi laporan guru berisi
// keduanya.
func TestPopulasiStatistikVsLaporan(t *testing.T) {
	rows := []riwayatDenganSiswa{
		{
			SiswaNama:        "Andi",
			SiswaJenjang:     mmodel.JenjangSD,
			RiwayatPercobaan: percobaanJSON(t, kmodel.PercobaanKuis{Skor: 3, Jawaban: []int{0}, Tanggal: waktu(1)}),
		},
		{
			SiswaNama:        "Budi",
			SiswaJenjang:     mmodel.JenjangSMP,
			RiwayatPercobaan: percobaanJSON(t, kmodel.PercobaanKuis{Skor: 2, Jawaban: []int{1}, Tanggal: waktu(2)}),
		},
	}

	tally := func(populasi []riwayatDenganSiswa) map[int]*StatistikSoal {
		stats := SeedStatistik(1)
		for _, r := range populasi {
			percobaan, err := kmodel.ParsePercobaan(r.RiwayatPercobaan)
			require.NoError(t, err)
			terbaik := PilihPercobaanTerbaik(percobaan)
			require.NotNil(t, terbaik)
			TallyDistribusi(stats, terbaik.Jawaban)
		}
		return stats
	}

	t.Run("statistik: hanya siswa se-jenjang materi", func(t *testing.T) {
		populasi := saringPopulasiJenjang(rows, mmodel.JenjangSD)
		require.Len(t, populasi, 1)
		assert.Equal(t, "Andi", populasi[0].SiswaNama)

		stats := tally(populasi)
		assert.Equal(t, 1, stats[0].TotalVotes)
		assert.Equal(t, map[int]int{0: 1}, stats[0].Distribusi)
	})

	t.Run("laporan: populasi global tanpa saringan", func(t *testing.T) {
		stats := tally(rows)
		assert.Equal(t, 2, stats[0].TotalVotes)
		assert.Equal(t, map[int]int{0: 1, 1: 1}, stats[0].Distribusi)
	})

	t.Run("jenjang tanpa responden: populasi kosong", func(t *testing.T) {
		assert.Empty(t, saringPopulasiJenjang(rows, mmodel.JenjangSMA))
	})
}

func TestPilihPercobaanTerbaik(t *testing.T) {
	t.Run("log kosong", func(t *testing.T) {
		assert.Nil(t, PilihPercobaanTerbaik(nil))
		assert.Nil(t, PilihPercobaanTerbaik([]kmodel.PercobaanKuis{}))
	})

	t.Run("skor tertinggi menang", func(t *testing.T) {
		terbaik := PilihPercobaanTerbaik([]kmodel.PercobaanKuis{
			{Skor: 1, Tanggal: waktu(1)},
			{Skor: 3, Tanggal: waktu(2)},
			{Skor: 2, Tanggal: waktu(3)},
		})
		require.NotNil(t, terbaik)
		assert.Equal(t, 3, terbaik.Skor)
		assert.Equal(t, waktu(2), terbaik.Tanggal)
	})

	t.Run("seri dimenangkan kemunculan pertama", func(t *testing.T) {
		terbaik := PilihPercobaanTerbaik([]kmodel.PercobaanKuis{
			{Skor: 1, Tanggal: waktu(1)},
			{Skor: 3, Tanggal: waktu(2)},
			{Skor: 3, Tanggal: waktu(5)},
		})
		require.NotNil(t, terbaik)
		assert.Equal(t, 3, terbaik.Skor)
		assert.Equal(t, waktu(2), terbaik.Tanggal)
	})
}

func TestTallyDistribusi(t *testing.T) {
	t.Run("akumulasi lintas responden", func(t *testing.T) {
		stats := map[int]*StatistikSoal{}
		TallyDistribusi(stats, []int{0, 1})
		TallyDistribusi(stats, []int{1, 1})
		TallyDistribusi(stats, []int{1, 0})

		require.Contains(t, stats, 0)
		assert.Equal(t, 3, stats[0].TotalVotes)
		assert.Equal(t, map[int]int{0: 1, 1: 2}, stats[0].Distribusi)

		require.Contains(t, stats, 1)
		assert.Equal(t, map[int]int{0: 1, 1: 2}, stats[1].Distribusi)
	})

	t.Run("tidak dijawab tidak ikut dihitung", func(t *testing.T) {
		stats := map[int]*StatistikSoal{}
		TallyDistribusi(stats, []int{-1, 2})
		TallyDistribusi(stats, []int{0, -1})

		assert.Equal(t, 1, stats[0].TotalVotes)
		assert.Equal(t, map[int]int{0: 1}, stats[0].Distribusi)
		assert.Equal(t, 1, stats[1].TotalVotes)
	})
}

func TestHitungPersentase(t *testing.T) {
	t.Run("pembulatan half away", func(t *testing.T) {
		stats := map[int]*StatistikSoal{
			0: {TotalVotes: 3, Distribusi: map[int]int{0: 1, 1: 2}, Persentase: map[int]int{}},
		}
		HitungPersentase(stats)
		assert.Equal(t, map[int]int{0: 33, 1: 67}, stats[0].Persentase)
	})

	t.Run("soal tanpa vote dibiarkan kosong", func(t *testing.T) {
		stats := map[int]*StatistikSoal{
			0: {TotalVotes: 0, Distribusi: map[int]int{}, Persentase: map[int]int{}},
		}
		HitungPersentase(stats)
		assert.Empty(t, stats[0].Persentase)
	})
}

func TestSusunLeaderboard(t *testing.T) {
	entri := []EntriLeaderboard{
		{Nama: "B", Skor: 3, Tanggal: waktu(2)},
		{Nama: "A", Skor: 3, Tanggal: waktu(1)},
		{Nama: "C", Skor: 2, Tanggal: waktu(1)},
		{Nama: "D", Skor: 1, Tanggal: waktu(1)},
	}

	t.Run("skor turun lalu tanggal naik", func(t *testing.T) {
		hasil := SusunLeaderboard(append([]EntriLeaderboard{}, entri...), 5)
		nama := make([]string, 0, len(hasil))
		for _, e := range hasil {
			nama = append(nama, e.Nama)
		}
		assert.Equal(t, []string{"A", "B", "C", "D"}, nama)
	})

	t.Run("dipotong top-n", func(t *testing.T) {
		hasil := SusunLeaderboard(append([]EntriLeaderboard{}, entri...), 2)
		assert.Len(t, hasil, 2)
		assert.Equal(t, "A", hasil[0].Nama)
		assert.Equal(t, "B", hasil[1].Nama)
	})

	t.Run("lebih sedikit dari n tidak masalah", func(t *testing.T) {
		hasil := SusunLeaderboard([]EntriLeaderboard{{Nama: "X", Skor: 1}}, 5)
		assert.Len(t, hasil, 1)
	})
}
