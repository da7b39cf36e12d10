package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJenjangScan(t *testing.T) {
	var j Jenjang
	require.NoError(t, j.Scan("SMP"))
	assert.Equal(t, JenjangSMP, j)

	require.NoError(t, j.Scan([]byte("TK")))
	assert.Equal(t, JenjangTK, j)

	assert.Error(t, j.Scan("S3"))
}

func TestJenjangValue(t *testing.T) {
	v, err := JenjangSD.Value()
	require.NoError(t, err)
	assert.Equal(t, "SD", v)

	_, err = Jenjang("kuliah").Value()
	assert.Error(t, err)
}

func TestKategoriMateriValid(t *testing.T) {
	assert.True(t, KategoriAkademik.Valid())
	assert.True(t, KategoriBinaDiri.Valid())
	assert.False(t, KategoriMateri("olahraga").Valid())
}
