// file: internals/features/edukasih/kuis/service/laporan_service.go
package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	mmodel "edukasih_backend/internals/features/edukasih/materi/model"
)

/* =========================================================
   SERVICE
========================================================= */

type LaporanService struct {
	DB *gorm.DB
}

func NewLaporanService(db *gorm.DB) *LaporanService {
	return &LaporanService{DB: db}
}

/* =========================================================
   OUTPUT
========================================================= */

// Satu baris laporan per siswa (dipakai export PDF:
// tabel siswa di halaman 1, analisis butir soal halaman 2+)
type BarisLaporan struct {
	Nama            string         `json:"nama"`
	Kelas           string         `json:"kelas"`
	Jenjang         mmodel.Jenjang `json:"jenjang"`
	JumlahPercobaan int            `json:"jumlah_percobaan"`
	Skor            int            `json:"skor"`
	Tanggal         time.Time      `json:"tanggal"`
	Jawaban         []int          `json:"jawaban"`
}

type HasilLaporan struct {
	MateriJudul string                 `json:"materi_judul"`
	Jenjang     mmodel.Jenjang         `json:"jenjang"`
	Data        []BarisLaporan         `json:"data"`
	Stats       map[int]*StatistikSoal `json:"stats"`
}

/* =========================================================
   PUBLIC API: GetLaporanKuis
========================================================= */

// GetLaporanKuis:
// - populasi GLOBAL: semua siswa dengan riwayat materi ini,
//   TANPA filter jenjang (beda disengaja dari statistik:
//   laporan guru perlu melihat semua pengerjaan)
// - stats di-seed untuk SETIAP indeks soal 0..N-1, jadi soal
//   tanpa responden tetap muncul dengan total_votes=0
func (s *LaporanService) GetLaporanKuis(ctx context.Context, materiID uuid.UUID) (*HasilLaporan, error) {
	var materi mmodel.MateriModel
	if err := s.DB.WithContext(ctx).
		First(&materi, "materi_id = ?", materiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMateriTidakDitemukan
		}
		log.Printf("[LaporanService] ERROR load materi: %v", err)
		return nil, err
	}

	var kuis kmodel.KuisModel
	if err := s.DB.WithContext(ctx).
		First(&kuis, "kuis_materi_id = ?", materiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKuisTidakDitemukan
		}
		log.Printf("[LaporanService] ERROR load kuis: %v", err)
		return nil, err
	}
	soal, err := kuis.DaftarPertanyaan()
	if err != nil {
		log.Printf("[LaporanService] ERROR parse pertanyaan: %v", err)
		return nil, err
	}

	var rows []riwayatDenganSiswa
	if err := s.DB.WithContext(ctx).
		Table("siswa_materi_histories AS h").
		Select("s.siswa_nama, s.siswa_kelas, s.siswa_jenjang, h.riwayat_percobaan").
		Joins("JOIN siswa AS s ON s.siswa_id = h.riwayat_siswa_id").
		Where("h.riwayat_materi_id = ?", materiID).
		Scan(&rows).Error; err != nil {
		log.Printf("[LaporanService] ERROR query riwayat: %v", err)
		return nil, err
	}

	hasil := &HasilLaporan{
		MateriJudul: materi.MateriJudul,
		Jenjang:     materi.MateriJenjang,
		Data:        []BarisLaporan{},
		Stats:       SeedStatistik(len(soal)),
	}

	for _, row := range rows {
		percobaan, err := kmodel.ParsePercobaan(row.RiwayatPercobaan)
		if err != nil {
			log.Printf("[LaporanService] WARNING: riwayat tidak bisa diparse, dilewati. siswa=%s err=%v", row.SiswaNama, err)
			continue
		}
		terbaik := PilihPercobaanTerbaik(percobaan)
		if terbaik == nil {
			continue
		}

		TallyDistribusi(hasil.Stats, terbaik.Jawaban)
		hasil.Data = append(hasil.Data, BarisLaporan{
			Nama:            row.SiswaNama,
			Kelas:           row.SiswaKelas,
			Jenjang:         row.SiswaJenjang,
			JumlahPercobaan: len(percobaan),
			Skor:            terbaik.Skor,
			Tanggal:         terbaik.Tanggal,
			Jawaban:         terbaik.Jawaban,
		})
	}

	HitungPersentase(hasil.Stats)

	// urutan sama dengan leaderboard, tanpa potong top-5
	sort.SliceStable(hasil.Data, func(i, j int) bool {
		if hasil.Data[i].Skor != hasil.Data[j].Skor {
			return hasil.Data[i].Skor > hasil.Data[j].Skor
		}
		return hasil.Data[i].Tanggal.Before(hasil.Data[j].Tanggal)
	})

	log.Printf("[LaporanService] Laporan selesai. materi=%s baris=%d soal=%d",
		materiID, len(hasil.Data), len(soal))

	return hasil, nil
}

// SeedStatistik menyiapkan bucket kosong untuk setiap indeks soal,
// supaya soal tanpa jawaban tetap muncul di laporan.
func SeedStatistik(totalSoal int) map[int]*StatistikSoal {
	stats := make(map[int]*StatistikSoal, totalSoal)
	for i := 0; i < totalSoal; i++ {
		stats[i] = &StatistikSoal{Distribusi: map[int]int{}, Persentase: map[int]int{}}
	}
	return stats
}
