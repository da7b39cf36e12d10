package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedStatistik(t *testing.T) {
	t.Run("semua indeks soal ter-seed", func(t *testing.T) {
		stats := SeedStatistik(4)
		require.Len(t, stats, 4)
		for i := 0; i < 4; i++ {
			require.Contains(t, stats, i)
			assert.Equal(t, 0, stats[i].TotalVotes)
			assert.Empty(t, stats[i].Distribusi)
			assert.Empty(t, stats[i].Persentase)
		}
	})

	t.Run("nol soal", func(t *testing.T) {
		assert.Empty(t, SeedStatistik(0))
	})

	t.Run("seed lalu tally: soal tanpa responden tetap muncul", func(t *testing.T) {
		stats := SeedStatistik(3)
		TallyDistribusi(stats, []int{1, -1, 0})
		TallyDistribusi(stats, []int{1, -1, -1})
		HitungPersentase(stats)

		assert.Equal(t, 2, stats[0].TotalVotes)
		assert.Equal(t, map[int]int{1: 100}, stats[0].Persentase)

		// soal 1: tidak ada yang menjawab, bucket tetap ada
		assert.Equal(t, 0, stats[1].TotalVotes)
		assert.Empty(t, stats[1].Persentase)

		assert.Equal(t, 1, stats[2].TotalVotes)
	})
}
