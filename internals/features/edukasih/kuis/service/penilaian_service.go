// file: internals/features/edukasih/kuis/service/penilaian_service.go
package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kmodel "edukasih_backend/internals/features/edukasih/kuis/model"
	smodel "edukasih_backend/internals/features/edukasih/siswa/model"
)

var (
	ErrKuisTidakDitemukan   = errors.New("kuis tidak ditemukan")
	ErrMateriTidakDitemukan = errors.New("materi tidak ditemukan")
)

/* =========================================================
   SERVICE
========================================================= */

type PenilaianService struct {
	DB *gorm.DB
}

func NewPenilaianService(db *gorm.DB) *PenilaianService {
	return &PenilaianService{DB: db}
}

/* =========================================================
   INPUT & OUTPUT
========================================================= */

// SubmitKuisInput merepresentasikan payload yang sudah
// divalidasi bentuknya di controller.
type SubmitKuisInput struct {
	// Optional: submit anonim (preview) tetap dinilai,
	// hanya tidak disimpan ke riwayat
	SiswaID *uuid.UUID

	KuisID uuid.UUID

	// Jawaban mentah dari client, nil = tidak dijawab.
	// Dinormalisasi sekali setelah kuis dimuat.
	Jawaban []*int
}

type HasilPenilaian struct {
	CorrectCount   int `json:"correct_count"`
	TotalQuestions int `json:"total_questions"`
	StarsEarned    int `json:"stars_earned"`
}

/* =========================================================
   PURE: normalisasi & perhitungan skor
========================================================= */

// NormalisasiJawaban memetakan jawaban mentah ke slice sepanjang
// totalSoal: nil (tidak dijawab) jadi -1, kelebihan jawaban dibuang,
// kekurangan dianggap tidak dijawab. Array compang-camping dari
// client tidak pernah bikin panic.
func NormalisasiJawaban(mentah []*int, totalSoal int) []int {
	bersih := make([]int, totalSoal)
	for i := range bersih {
		if i < len(mentah) && mentah[i] != nil {
			bersih[i] = *mentah[i]
		} else {
			bersih[i] = -1
		}
	}
	return bersih
}

// NilaiBintang: skor dinormalisasi ke 0..3 berapapun jumlah soal,
// supaya granularitas reward ke anak selalu sama.
// totalSoal == 0 didefinisikan 0 (hindari bagi nol).
func NilaiBintang(benar, totalSoal int) int {
	if totalSoal <= 0 {
		return 0
	}
	return int(math.Round(3 * float64(benar) / float64(totalSoal)))
}

// HitungSkor membandingkan jawaban dengan kunci per soal.
// Perbandingan hanya mengiterasi daftar soal, jadi panjang jawaban
// yang tidak pas tidak pernah out-of-range.
func HitungSkor(soal []kmodel.PertanyaanKuis, jawaban []int) HasilPenilaian {
	benar := 0
	for i, s := range soal {
		if i < len(jawaban) && jawaban[i] == s.IndeksJawabanBenar {
			benar++
		}
	}
	return HasilPenilaian{
		CorrectCount:   benar,
		TotalQuestions: len(soal),
		StarsEarned:    NilaiBintang(benar, len(soal)),
	}
}

/* =========================================================
   PUBLIC API: SubmitKuis
========================================================= */

// SubmitKuis:
// - load kuis + soal
// - hitung skor (selalu, juga untuk submit anonim)
// - kalau siswa ada: append percobaan ke riwayat materi,
//   naikkan skor cache hanya jika lebih besar (max monoton),
//   lalu hitung ulang total skor_bintang dari seluruh riwayat
func (s *PenilaianService) SubmitKuis(ctx context.Context, in *SubmitKuisInput) (*HasilPenilaian, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}
	if in.KuisID == uuid.Nil {
		return nil, ErrKuisTidakDitemukan
	}

	log.Printf("[PenilaianService] SubmitKuis called. kuis_id=%s siswa_id=%v jawaban_count=%d",
		in.KuisID, in.SiswaID, len(in.Jawaban))

	// 1) Load kuis
	var kuis kmodel.KuisModel
	if err := s.DB.WithContext(ctx).
		First(&kuis, "kuis_id = ?", in.KuisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[PenilaianService] ERROR: kuis tidak ditemukan. kuis_id=%s", in.KuisID)
			return nil, ErrKuisTidakDitemukan
		}
		log.Printf("[PenilaianService] ERROR load kuis: %v", err)
		return nil, err
	}

	soal, err := kuis.DaftarPertanyaan()
	if err != nil {
		log.Printf("[PenilaianService] ERROR parse pertanyaan: %v", err)
		return nil, err
	}

	// 2) Normalisasi lalu hitung skor
	jawaban := NormalisasiJawaban(in.Jawaban, len(soal))
	hasil := HitungSkor(soal, jawaban)
	log.Printf("[PenilaianService] Skor dihitung. benar=%d total=%d bintang=%d",
		hasil.CorrectCount, hasil.TotalQuestions, hasil.StarsEarned)

	// 3) Tanpa siswa → nilai dikembalikan tanpa disimpan (preview/anonim)
	if in.SiswaID == nil || *in.SiswaID == uuid.Nil {
		log.Println("[PenilaianService] Submit anonim, skor tidak disimpan")
		return &hasil, nil
	}

	var siswa smodel.SiswaModel
	if err := s.DB.WithContext(ctx).
		First(&siswa, "siswa_id = ?", *in.SiswaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Referensi siswa tidak resolve: bukan error, skor tetap dikembalikan
			log.Printf("[PenilaianService] Siswa tidak ditemukan (%s), skor tidak disimpan", *in.SiswaID)
			return &hasil, nil
		}
		log.Printf("[PenilaianService] ERROR load siswa: %v", err)
		return nil, err
	}

	// 4) Append ke riwayat siswa × materi
	now := time.Now().UTC()
	percobaan := kmodel.PercobaanKuis{
		Skor:    hasil.StarsEarned,
		Jawaban: jawaban,
		Tanggal: now,
	}

	var riwayat kmodel.RiwayatMateriModel
	err = s.DB.WithContext(ctx).
		First(&riwayat, "riwayat_siswa_id = ? AND riwayat_materi_id = ?", siswa.SiswaID, kuis.KuisMateriID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		riwayat = kmodel.RiwayatMateriModel{
			RiwayatSiswaID:  siswa.SiswaID,
			RiwayatMateriID: kuis.KuisMateriID,
		}
	case err != nil:
		log.Printf("[PenilaianService] ERROR load riwayat: %v", err)
		return nil, err
	}

	if err := riwayat.TambahPercobaan(percobaan); err != nil {
		log.Printf("[PenilaianService] ERROR TambahPercobaan: %v", err)
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Save(&riwayat).Error; err != nil {
		log.Printf("[PenilaianService] ERROR save riwayat: %v", err)
		return nil, err
	}

	// 5) Hitung ulang penuh skor_bintang dari seluruh riwayat.
	//    Bukan incremental: cache jadi self-healing dari anomali apapun.
	if err := SegarkanSkorBintang(s.DB.WithContext(ctx), siswa.SiswaID); err != nil {
		log.Printf("[PenilaianService] ERROR recompute skor_bintang: %v", err)
		return nil, err
	}

	log.Printf("[SUCCESS] Percobaan tersimpan. siswa=%s materi=%s skor=%d best=%d",
		siswa.SiswaID, kuis.KuisMateriID, hasil.StarsEarned, riwayat.RiwayatSkor)

	return &hasil, nil
}

// SegarkanSkorBintang menghitung ulang cache siswa_skor_bintang dari
// seluruh riwayat tiap siswa. Dipanggil setiap kali riwayat berubah:
// submit kuis, dan penghapusan materi (riwayatnya ikut hilang).
func SegarkanSkorBintang(tx *gorm.DB, siswaIDs ...uuid.UUID) error {
	if len(siswaIDs) == 0 {
		return nil
	}
	return tx.Model(&smodel.SiswaModel{}).
		Where("siswa_id IN ?", siswaIDs).
		Update("siswa_skor_bintang", gorm.Expr(
			"(SELECT COALESCE(SUM(riwayat_skor), 0) FROM siswa_materi_histories WHERE riwayat_siswa_id = siswa.siswa_id)",
		)).Error
}
