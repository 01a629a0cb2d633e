// file: internals/features/ai/analysis/service/quality.go
package service

import "math"

// MinQualityScore: di bawah ambang ini analisis dibatalkan tanpa keluaran.
const MinQualityScore = 0.3

// DataQualityInput merangkum kelengkapan data sebelum analisis.
type DataQualityInput struct {
	StudentCount        int64
	WithRecordsCount    int64
	WithAttendanceCount int64
	HasBenchmark        bool
}

// ComputeDataQualityScore menghasilkan skor [0,1] berbobot:
// kecukupan sampel 0.3, fraksi siswa bernilai 0.3, fraksi siswa
// berkehadiran 0.2, ketersediaan data pembanding 0.2.
func ComputeDataQualityScore(in DataQualityInput) float64 {
	score := 0.0

	// minimal 10 siswa dianggap sampel penuh
	if in.StudentCount >= 10 {
		score += 0.3
	} else if in.StudentCount > 0 {
		score += 0.3 * float64(in.StudentCount) / 10
	}

	if in.StudentCount > 0 {
		score += 0.3 * float64(in.WithRecordsCount) / float64(in.StudentCount)
		score += 0.2 * float64(in.WithAttendanceCount) / float64(in.StudentCount)
	}

	if in.HasBenchmark {
		score += 0.2
	}

	return math.Round(score*100) / 100
}
