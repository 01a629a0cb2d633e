// file: internals/features/ai/gateway/confidence_test.go
package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "teks pendek tanpa kata kunci",
			text: "halo",
			want: 0.5,
		},
		{
			name: "JSON pendek valid",
			text: `{"a":1}`,
			want: 0.7,
		},
		{
			name: "teks panjang dengan satu kata kunci",
			// >100 karakter, bukan JSON, memuat "siswa" (1 dari 10 kata kunci)
			text: "Analisis menunjukkan bahwa sebagian siswa memerlukan perhatian khusus dalam beberapa aspek pembelajaran sehari-hari di sekolah.",
			want: 0.5 + 0.1 + 0.2*2.0/10.0, // juga mengenai "pembelajaran"
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scoreConfidence(tt.text), 0.001)
		})
	}
}

func TestScoreConfidence_ClampedToOne(t *testing.T) {
	// JSON valid >500 karakter yang memuat semua kata kunci
	text := `{"isi":"` + strings.Join(domainKeywords, " ") + ` ` + strings.Repeat("x", 500) + `"}`
	assert.Equal(t, 1.0, scoreConfidence(text))
}
