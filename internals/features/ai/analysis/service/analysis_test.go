// file: internals/features/ai/analysis/service/analysis_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	advisoryModel "schoolku_backend/internals/features/ai/advisory/model"
	gateway "schoolku_backend/internals/features/ai/gateway"
)

func TestComputeDataQualityScore(t *testing.T) {
	tests := []struct {
		name string
		in   DataQualityInput
		want float64
	}{
		{
			name: "data lengkap",
			in:   DataQualityInput{StudentCount: 20, WithRecordsCount: 20, WithAttendanceCount: 20, HasBenchmark: true},
			want: 1.0,
		},
		{
			name: "tanpa siswa",
			in:   DataQualityInput{},
			want: 0.0,
		},
		{
			name: "sampel kecil tanpa pembanding",
			in:   DataQualityInput{StudentCount: 5, WithRecordsCount: 5, WithAttendanceCount: 0},
			want: 0.15 + 0.3, // 0.3*(5/10) + 0.3*1 + 0 + 0
		},
		{
			name: "separuh siswa bernilai",
			in:   DataQualityInput{StudentCount: 10, WithRecordsCount: 5, WithAttendanceCount: 10, HasBenchmark: true},
			want: 0.3 + 0.15 + 0.2 + 0.2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeDataQualityScore(tt.in), 0.001)
		})
	}
}

func TestDeriveUrgency(t *testing.T) {
	tests := []struct {
		score      float64
		attendance float64
		want       advisoryModel.Priority
	}{
		{55, 95, advisoryModel.PriorityCritical},
		{90, 65, advisoryModel.PriorityCritical},
		{65, 95, advisoryModel.PriorityHigh},
		{90, 75, advisoryModel.PriorityHigh},
		{72, 95, advisoryModel.PriorityMedium},
		{90, 83, advisoryModel.PriorityMedium},
		{85, 95, advisoryModel.PriorityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveUrgency(tt.score, tt.attendance),
			"score=%.0f attendance=%.0f", tt.score, tt.attendance)
	}
}

func TestTitleDedupPrefix(t *testing.T) {
	assert.Equal(t, "judul pendek", TitleDedupPrefix("judul pendek"))
	assert.Equal(t, "12345678901234567890", TitleDedupPrefix("123456789012345678901234567890"))
	// tepat 20 karakter dipakai utuh
	assert.Equal(t, "12345678901234567890", TitleDedupPrefix("12345678901234567890"))
}

func TestParseFindings_StructuredJSON(t *testing.T) {
	res := &gateway.Result{
		Parsed: map[string]interface{}{
			"recommendations": []interface{}{
				map[string]interface{}{
					"title":       "Tambah jam belajar",
					"description": "Adakan kelas tambahan untuk matematika.",
					"priority":    "high",
				},
				map[string]interface{}{
					"title":       "Pendampingan wali kelas",
					"description": "Libatkan wali kelas untuk monitoring mingguan.",
				},
			},
		},
		Raw:        "{}",
		Confidence: 0.9,
	}

	findings := parseFindings(res, "student_performance", "fallback", advisoryModel.PriorityMedium, []string{"id-1"}, nil)
	require.Len(t, findings, 2)

	assert.Equal(t, "Tambah jam belajar", findings[0].Title)
	assert.Equal(t, advisoryModel.PriorityHigh, findings[0].Urgency)
	assert.Equal(t, 0.9, findings[0].Confidence)
	assert.Equal(t, []string{"id-1"}, findings[0].AffectedEntities)

	// butir tanpa priority memakai urgensi bawaan
	assert.Equal(t, advisoryModel.PriorityMedium, findings[1].Urgency)
}

func TestParseFindings_RawFallback(t *testing.T) {
	res := &gateway.Result{
		Raw:        "Perlu perhatian pada kehadiran kelas 9A.",
		Confidence: 0.6,
	}

	findings := parseFindings(res, "attendance", "Intervensi kehadiran", advisoryModel.PriorityCritical, nil, nil)
	require.Len(t, findings, 1)
	assert.Equal(t, "Intervensi kehadiran", findings[0].Title)
	assert.Equal(t, "Perlu perhatian pada kehadiran kelas 9A.", findings[0].Description)
	assert.Equal(t, advisoryModel.PriorityCritical, findings[0].Urgency)
}

func TestRunSubTasks_SettleAll(t *testing.T) {
	tasks := []subTask{
		{category: "ok", run: func(ctx context.Context) ([]Finding, error) {
			return []Finding{{Category: "ok", Title: "a"}}, nil
		}},
		{category: "gagal", run: func(ctx context.Context) ([]Finding, error) {
			return nil, errors.New("koneksi putus")
		}},
		{category: "panik", run: func(ctx context.Context) ([]Finding, error) {
			panic("boom")
		}},
	}

	findings, errs, rateLimited := runSubTasks(context.Background(), tasks)
	require.Len(t, findings, 1)
	assert.Equal(t, "a", findings[0].Title)

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "gagal: koneksi putus")
	assert.Contains(t, errs[1], "panik: panic")
	assert.False(t, rateLimited)
}

func TestRunSubTasks_AllRateLimited(t *testing.T) {
	limited := func(ctx context.Context) ([]Finding, error) {
		return nil, fmt.Errorf("memanggil gateway: %w", gateway.ErrRateLimited)
	}
	tasks := []subTask{
		{category: "grades", run: limited},
		{category: "attendance", run: limited},
	}

	findings, errs, rateLimited := runSubTasks(context.Background(), tasks)
	assert.Empty(t, findings)
	require.Len(t, errs, 2)
	assert.True(t, rateLimited)
}

func TestRunSubTasks_MixedFailureNotRateLimited(t *testing.T) {
	tasks := []subTask{
		{category: "grades", run: func(ctx context.Context) ([]Finding, error) {
			return nil, gateway.ErrRateLimited
		}},
		{category: "assets", run: func(ctx context.Context) ([]Finding, error) {
			return nil, errors.New("koneksi putus")
		}},
	}

	_, errs, rateLimited := runSubTasks(context.Background(), tasks)
	require.Len(t, errs, 2)
	assert.False(t, rateLimited)
}

func TestMaintenanceDeadlineUrgency(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	// jadwal kemarin sudah terlewati
	assert.Equal(t, advisoryModel.PriorityHigh,
		MaintenanceDeadlineUrgency(today.AddDate(0, 0, -1), today))
	// jadwal hari ini atau dalam jendela belum terlewati
	assert.Equal(t, advisoryModel.PriorityMedium,
		MaintenanceDeadlineUrgency(today, today))
	assert.Equal(t, advisoryModel.PriorityMedium,
		MaintenanceDeadlineUrgency(today.AddDate(0, 0, MaintenanceDeadlineWindowDays), today))
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, "judul biasa", EscapeLikePattern("judul biasa"))
	assert.Equal(t, `100\% kehadiran`, EscapeLikePattern("100% kehadiran"))
	assert.Equal(t, `nilai\_rata`, EscapeLikePattern("nilai_rata"))
	assert.Equal(t, `garis\\miring`, EscapeLikePattern(`garis\miring`))
}
