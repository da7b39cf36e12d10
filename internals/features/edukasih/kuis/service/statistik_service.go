// file: internals/features/edukasih/kuis/service/statistik_service.go
package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	mmodel "edukasih_backend/internals/features/edukasih/materi/model"
)

/* =========================================================
   SERVICE
========================================================= */

type StatistikService struct {
	DB *gorm.DB
}

func NewStatistikService(db *gorm.DB) *StatistikService {
	return &StatistikService{DB: db}
}

/* =========================================================
   OUTPUT
========================================================= */

// Statistik satu soal: berapa kali tiap opsi dipilih
// (di antara percobaan terbaik tiap siswa)
type StatistikSoal struct {
	TotalVotes int         `json:"total_votes"`
	Distribusi map[int]int `json:"distribusi"`
	Persentase map[int]int `json:"persentase"`
}

type EntriLeaderboard struct {
	Nama    string    `json:"nama"`
	Kelas   string    `json:"kelas"`
	Skor    int       `json:"skor"`
	Tanggal time.Time `json:"tanggal"`
}

type HasilStatistik struct {
	Stats       map[int]*StatistikSoal `json:"stats"`
	Leaderboard []EntriLeaderboard     `json:"leaderboard"`
}

/* =========================================================
   PURE: best attempt, tally, leaderboard
   (satu algoritma dipakai statistik DAN laporan)
========================================================= */

// PilihPercobaanTerbaik: skor tertinggi, seri dimenangkan kemunculan
// PERTAMA (fold kiri dengan pembanding strictly-greater).
// Log kosong → nil.
func PilihPercobaanTerbaik(percobaan []kmodel.PercobaanKuis) *kmodel.PercobaanKuis {
	if len(percobaan) == 0 {
		return nil
	}
	terbaik := percobaan[0]
	for _, p := range percobaan[1:] {
		if p.Skor > terbaik.Skor {
			terbaik = p
		}
	}
	return &terbaik
}

// TallyDistribusi menghitung pilihan opsi per soal dari sekumpulan
// array jawaban (percobaan terbaik tiap siswa). Sentinel -1
// (tidak dijawab) TIDAK ikut dihitung; "tidak menjawab" terbaca
// dari total_votes yang lebih kecil dari jumlah responden.
func TallyDistribusi(stats map[int]*StatistikSoal, jawaban []int) {
	for idxSoal, opsi := range jawaban {
		if opsi < 0 {
			continue
		}
		st, ok := stats[idxSoal]
		if !ok {
			st = &StatistikSoal{Distribusi: map[int]int{}, Persentase: map[int]int{}}
			stats[idxSoal] = st
		}
		st.Distribusi[opsi]++
		st.TotalVotes++
	}
}

// HitungPersentase mengisi persentase per opsi, round half-away.
// Soal tanpa vote dibiarkan kosong (hindari bagi nol).
func HitungPersentase(stats map[int]*StatistikSoal) {
	for _, st := range stats {
		if st.TotalVotes == 0 {
			continue
		}
		for opsi, n := range st.Distribusi {
			st.Persentase[opsi] = int(math.Round(100 * float64(n) / float64(st.TotalVotes)))
		}
	}
}

// SusunLeaderboard: skor turun, tanggal naik (pencapai lebih awal
// di atas), potong ke n teratas.
func SusunLeaderboard(entri []EntriLeaderboard, n int) []EntriLeaderboard {
	sort.SliceStable(entri, func(i, j int) bool {
		if entri[i].Skor != entri[j].Skor {
			return entri[i].Skor > entri[j].Skor
		}
		return entri[i].Tanggal.Before(entri[j].Tanggal)
	})
	if len(entri) > n {
		entri = entri[:n]
	}
	return entri
}

/* =========================================================
   PUBLIC API: GetStatistikKuis
========================================================= */

// baris hasil join riwayat × siswa
type riwayatDenganSiswa struct {
	SiswaNama        string         `gorm:"column:siswa_nama"`
	SiswaKelas       string         `gorm:"column:siswa_kelas"`
	SiswaJenjang     mmodel.Jenjang `gorm:"column:siswa_jenjang"`
	RiwayatPercobaan datatypes.JSON `gorm:"column:riwayat_percobaan"`
}

// saringPopulasiJenjang membatasi populasi ke siswa se-jenjang dengan
// materi. Hanya statistik siswa yang disaring begini: laporan guru
// sengaja memakai populasi global (lintas jenjang) tanpa saringan.
func saringPopulasiJenjang(rows []riwayatDenganSiswa, jenjang mmodel.Jenjang) []riwayatDenganSiswa {
	hasil := make([]riwayatDenganSiswa, 0, len(rows))
	for _, r := range rows {
		if r.SiswaJenjang == jenjang {
			hasil = append(hasil, r)
		}
	}
	return hasil
}

// GetStatistikKuis:
// - populasi = siswa se-jenjang dengan materi yang punya riwayat materi ini
// - per siswa ambil percobaan terbaik, lalu tally distribusi jawaban
// - leaderboard top 5
func (s *StatistikService) GetStatistikKuis(ctx context.Context, materiID uuid.UUID) (*HasilStatistik, error) {
	var materi mmodel.MateriModel
	if err := s.DB.WithContext(ctx).
		First(&materi, "materi_id = ?", materiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMateriTidakDitemukan
		}
		log.Printf("[StatistikService] ERROR load materi: %v", err)
		return nil, err
	}

	var rows []riwayatDenganSiswa
	if err := s.DB.WithContext(ctx).
		Table("siswa_materi_histories AS h").
		Select("s.siswa_nama, s.siswa_kelas, s.siswa_jenjang, h.riwayat_percobaan").
		Joins("JOIN siswa AS s ON s.siswa_id = h.riwayat_siswa_id").
		Where("h.riwayat_materi_id = ?", materiID).
		Scan(&rows).Error; err != nil {
		log.Printf("[StatistikService] ERROR query riwayat: %v", err)
		return nil, err
	}
	rows = saringPopulasiJenjang(rows, materi.MateriJenjang)

	hasil := &HasilStatistik{
		Stats:       map[int]*StatistikSoal{},
		Leaderboard: []EntriLeaderboard{},
	}

	for _, row := range rows {
		percobaan, err := kmodel.ParsePercobaan(row.RiwayatPercobaan)
		if err != nil {
			// record korup jangan meruntuhkan seluruh statistik
			log.Printf("[StatistikService] WARNING: riwayat tidak bisa diparse, dilewati. siswa=%s err=%v", row.SiswaNama, err)
			continue
		}
		terbaik := PilihPercobaanTerbaik(percobaan)
		if terbaik == nil {
			// record lama tanpa log percobaan: tidak masuk populasi
			continue
		}

		TallyDistribusi(hasil.Stats, terbaik.Jawaban)
		hasil.Leaderboard = append(hasil.Leaderboard, EntriLeaderboard{
			Nama:    row.SiswaNama,
			Kelas:   row.SiswaKelas,
			Skor:    terbaik.Skor,
			Tanggal: terbaik.Tanggal,
		})
	}

	HitungPersentase(hasil.Stats)
	hasil.Leaderboard = SusunLeaderboard(hasil.Leaderboard, 5)

	log.Printf("[StatistikService] Statistik selesai. materi=%s responden=%d soal_terisi=%d",
		materiID, len(rows), len(hasil.Stats))

	return hasil, nil
}
