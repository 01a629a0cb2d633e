// file: internals/features/ai/gateway/confidence.go
package gateway

import (
	"strings"

	"github.com/bytedance/sonic"
)

// Kata kunci domain yang menaikkan skor keyakinan bila muncul di respons.
var domainKeywords = []string{
	"rekomendasi",
	"siswa",
	"nilai",
	"kehadiran",
	"anggaran",
	"guru",
	"pembelajaran",
	"peringatan",
	"tindakan",
	"prioritas",
}

// scoreConfidence: heuristik, bukan statistik.
// Basis 0.5; +0.1 bila panjang > 100; +0.1 bila > 500; +0.2 bila JSON valid;
// +0.2 proporsional terhadap rasio kata kunci yang muncul; dipotong di 1.0.
func scoreConfidence(text string) float64 {
	score := 0.5

	if len(text) > 100 {
		score += 0.1
	}
	if len(text) > 500 {
		score += 0.1
	}

	var probe interface{}
	if sonic.Unmarshal([]byte(text), &probe) == nil {
		score += 0.2
	}

	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	score += 0.2 * float64(hits) / float64(len(domainKeywords))

	if score > 1.0 {
		score = 1.0
	}
	return score
}
