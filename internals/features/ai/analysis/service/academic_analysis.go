// file: internals/features/ai/analysis/service/academic_analysis.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gateway "schoolku_backend/internals/features/ai/gateway"
)

// AcademicAnalysisService menganalisis performa akademik sekolah dan
// menghasilkan AiRecommendation melalui gateway AI.
type AcademicAnalysisService struct {
	DB      *gorm.DB
	Gateway *gateway.Gateway
}

func NewAcademicAnalysisService(db *gorm.DB, gw *gateway.Gateway) *AcademicAnalysisService {
	return &AcademicAnalysisService{DB: db, Gateway: gw}
}

type studentMetricRow struct {
	StudentID      uuid.UUID
	StudentName    string
	StudentClass   string
	AvgScore       float64
	AttendanceRate float64
}

type subjectMetricRow struct {
	SubjectName string
	AvgScore    float64
	RecordCount int64
}

type classMetricRow struct {
	StudentClass string
	AvgScore     float64
	StudentCount int64
}

// Run menjalankan seluruh pipeline; save=false hanya mengembalikan temuan.
func (s *AcademicAnalysisService) Run(ctx context.Context, schoolID uuid.UUID, save bool) (*RunSummary, error) {
	// ---- GATHER ----
	var studentCount, withRecords, withAttendance, benchmarkCount int64
	if err := s.DB.Table("students").
		Where("student_school_id = ? AND student_is_active = true", schoolID).
		Count(&studentCount).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Table("students").
		Where("student_school_id = ? AND student_is_active = true", schoolID).
		Where("student_id IN (?)", s.DB.Table("academic_records").
			Select("academic_record_student_id").
			Where("academic_record_school_id = ?", schoolID)).
		Count(&withRecords).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Table("students").
		Where("student_school_id = ? AND student_is_active = true", schoolID).
		Where("student_id IN (?)", s.DB.Table("attendance_records").
			Select("attendance_student_id").
			Where("attendance_school_id = ?", schoolID)).
		Count(&withAttendance).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Table("school_kpis").
		Where("school_kpi_school_id = ?", schoolID).
		Count(&benchmarkCount).Error; err != nil {
		return nil, err
	}

	// ---- VALIDATE_QUALITY ----
	quality := ComputeDataQualityScore(DataQualityInput{
		StudentCount:        studentCount,
		WithRecordsCount:    withRecords,
		WithAttendanceCount: withAttendance,
		HasBenchmark:        benchmarkCount > 0,
	})
	summary := &RunSummary{QualityScore: quality}
	if quality < MinQualityScore {
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("kualitas data %.2f di bawah ambang %.2f, analisis dibatalkan", quality, MinQualityScore))
		return summary, nil
	}

	// ---- ANALYZE_* (paralel) ----
	tasks := []subTask{
		{category: "student_performance", run: func(ctx context.Context) ([]Finding, error) {
			return s.analyzeStudentPerformance(ctx, schoolID)
		}},
		{category: "subject_performance", run: func(ctx context.Context) ([]Finding, error) {
			return s.analyzeSubjectPerformance(ctx, schoolID)
		}},
		{category: "attendance_patterns", run: func(ctx context.Context) ([]Finding, error) {
			return s.analyzeAttendancePatterns(ctx, schoolID)
		}},
		{category: "class_performance", run: func(ctx context.Context) ([]Finding, error) {
			return s.analyzeClassPerformance(ctx, schoolID)
		}},
	}
	findings, errs, rateLimited := runSubTasks(ctx, tasks)
	if rateLimited && len(findings) == 0 {
		return nil, gateway.ErrRateLimited
	}

	// ---- SUMMARIZE / SAVE ----
	summary.Findings = findings
	summary.Generated = len(findings)
	summary.Errors = append(summary.Errors, errs...)
	if save && len(findings) > 0 {
		saved, skipped, saveErrs := saveRecommendations(s.DB, schoolID, findings)
		summary.Saved = saved
		summary.Skipped = skipped
		summary.Errors = append(summary.Errors, saveErrs...)
	}
	return summary, nil
}

func (s *AcademicAnalysisService) studentMetrics(schoolID uuid.UUID) ([]studentMetricRow, error) {
	var rows []studentMetricRow
	err := s.DB.Table("students").
		Select(`students.student_id AS student_id,
			students.student_name AS student_name,
			students.student_class AS student_class,
			COALESCE(AVG(academic_records.academic_record_composite_score), 0) AS avg_score,
			COALESCE(100.0 * COUNT(attendance_records.attendance_id) FILTER (WHERE attendance_records.attendance_status = 'hadir')
				/ NULLIF(COUNT(attendance_records.attendance_id), 0), 100) AS attendance_rate`).
		Joins("LEFT JOIN academic_records ON academic_records.academic_record_student_id = students.student_id").
		Joins("LEFT JOIN attendance_records ON attendance_records.attendance_student_id = students.student_id").
		Where("students.student_school_id = ? AND students.student_is_active = true", schoolID).
		Group("students.student_id, students.student_name, students.student_class").
		Scan(&rows).Error
	return rows, err
}

// analyzeStudentPerformance: siswa dengan rata-rata komposit < 75 dianggap
// pelanggaran ambang; prompt hanya dibangun bila ada pelanggaran.
func (s *AcademicAnalysisService) analyzeStudentPerformance(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	rows, err := s.studentMetrics(schoolID)
	if err != nil {
		return nil, err
	}

	var breaches []studentMetricRow
	for _, r := range rows {
		if r.AvgScore > 0 && r.AvgScore < 75 {
			breaches = append(breaches, r)
		}
	}
	if len(breaches) == 0 {
		return nil, nil
	}

	worst := breaches[0]
	var sb strings.Builder
	sb.WriteString("Berikut daftar siswa dengan rata-rata nilai di bawah standar (75):\n")
	var affected []string
	for _, b := range breaches {
		fmt.Fprintf(&sb, "- %s (kelas %s): rata-rata nilai %.1f, kehadiran %.1f%%\n",
			b.StudentName, b.StudentClass, b.AvgScore, b.AttendanceRate)
		affected = append(affected, b.StudentID.String())
		if b.AvgScore < worst.AvgScore {
			worst = b
		}
	}
	sb.WriteString("\nBuatkan rekomendasi tindakan pembelajaran untuk sekolah. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "student_performance",
		"Peningkatan performa siswa di bawah standar",
		DeriveUrgency(worst.AvgScore, worst.AttendanceRate),
		affected,
		map[string]interface{}{"breach_count": len(breaches)},
	), nil
}

func (s *AcademicAnalysisService) analyzeSubjectPerformance(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []subjectMetricRow
	err := s.DB.Table("academic_records").
		Select(`academic_record_subject_name AS subject_name,
			AVG(academic_record_composite_score) AS avg_score,
			COUNT(*) AS record_count`).
		Where("academic_record_school_id = ?", schoolID).
		Group("academic_record_subject_name").
		Having("AVG(academic_record_composite_score) < 75").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lowest := rows[0].AvgScore
	var sb strings.Builder
	sb.WriteString("Mata pelajaran dengan rata-rata nilai sekolah di bawah 75:\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "- %s: rata-rata %.1f dari %d nilai\n", r.SubjectName, r.AvgScore, r.RecordCount)
		if r.AvgScore < lowest {
			lowest = r.AvgScore
		}
	}
	sb.WriteString("\nBuatkan rekomendasi perbaikan kurikulum atau metode mengajar. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "subject_performance",
		"Perbaikan mata pelajaran di bawah standar",
		DeriveUrgency(lowest, 100),
		nil,
		map[string]interface{}{"subject_count": len(rows)},
	), nil
}

func (s *AcademicAnalysisService) analyzeAttendancePatterns(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	rows, err := s.studentMetrics(schoolID)
	if err != nil {
		return nil, err
	}

	var breaches []studentMetricRow
	for _, r := range rows {
		if r.AttendanceRate < 85 {
			breaches = append(breaches, r)
		}
	}
	if len(breaches) == 0 {
		return nil, nil
	}

	worst := breaches[0]
	var sb strings.Builder
	sb.WriteString("Siswa dengan tingkat kehadiran di bawah 85%:\n")
	var affected []string
	for _, b := range breaches {
		fmt.Fprintf(&sb, "- %s (kelas %s): kehadiran %.1f%%\n", b.StudentName, b.StudentClass, b.AttendanceRate)
		affected = append(affected, b.StudentID.String())
		if b.AttendanceRate < worst.AttendanceRate {
			worst = b
		}
	}
	sb.WriteString("\nBuatkan rekomendasi intervensi kehadiran. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "attendance_patterns",
		"Intervensi kehadiran siswa",
		DeriveUrgency(100, worst.AttendanceRate),
		affected,
		map[string]interface{}{"breach_count": len(breaches)},
	), nil
}

func (s *AcademicAnalysisService) analyzeClassPerformance(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []classMetricRow
	err := s.DB.Table("students").
		Select(`students.student_class AS student_class,
			AVG(academic_records.academic_record_composite_score) AS avg_score,
			COUNT(DISTINCT students.student_id) AS student_count`).
		Joins("JOIN academic_records ON academic_records.academic_record_student_id = students.student_id").
		Where("students.student_school_id = ? AND students.student_is_active = true", schoolID).
		Group("students.student_class").
		Having("AVG(academic_records.academic_record_composite_score) < 75").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lowest := rows[0].AvgScore
	var sb strings.Builder
	sb.WriteString("Kelas dengan rata-rata nilai di bawah 75:\n")
	var affected []string
	for _, r := range rows {
		fmt.Fprintf(&sb, "- Kelas %s: rata-rata %.1f (%d siswa)\n", r.StudentClass, r.AvgScore, r.StudentCount)
		affected = append(affected, r.StudentClass)
		if r.AvgScore < lowest {
			lowest = r.AvgScore
		}
	}
	sb.WriteString("\nBuatkan rekomendasi pembinaan per kelas. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "class_performance",
		"Pembinaan kelas di bawah standar",
		DeriveUrgency(lowest, 100),
		affected,
		map[string]interface{}{"class_count": len(rows)},
	), nil
}
