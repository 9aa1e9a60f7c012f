package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "foto.jpg", sanitizeFilename("foto.jpg"))
	assert.Equal(t, "foto_les_piano.jpg", sanitizeFilename("foto les piano.jpg"))
	assert.Equal(t, "a_b_c.png", sanitizeFilename("a/b\\c.png"))
	assert.Equal(t, "laporan-2024_v1.pdf", sanitizeFilename("laporan-2024_v1.pdf"))
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("foto kegiatan.jpg")
	b := GenerateUniqueFilename("foto kegiatan.jpg")

	assert.NotEqual(t, a, b, "dua upload file yang sama tidak boleh bentrok")
	assert.True(t, strings.HasSuffix(a, "-foto_kegiatan.jpg"), a)
	assert.NotContains(t, a, " ")
}
