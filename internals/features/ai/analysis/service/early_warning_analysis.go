// file: internals/features/ai/analysis/service/early_warning_analysis.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	advisoryModel "schoolku_backend/internals/features/ai/advisory/model"
	gateway "schoolku_backend/internals/features/ai/gateway"
)

// EarlyWarningAnalysisService mendeteksi kondisi berisiko (nilai,
// kehadiran, anggaran, aset, cakupan evaluasi guru, tenggat
// pemeliharaan) dan menghasilkan EarlyWarning melalui gateway AI.
type EarlyWarningAnalysisService struct {
	DB      *gorm.DB
	Gateway *gateway.Gateway
}

func NewEarlyWarningAnalysisService(db *gorm.DB, gw *gateway.Gateway) *EarlyWarningAnalysisService {
	return &EarlyWarningAnalysisService{DB: db, Gateway: gw}
}

func (s *EarlyWarningAnalysisService) Run(ctx context.Context, schoolID uuid.UUID, save bool) (*RunSummary, error) {
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

	tasks := []subTask{
		{category: "grades", run: func(ctx context.Context) ([]Finding, error) {
			return s.detectGradeRisks(ctx, schoolID)
		}},
		{category: "attendance", run: func(ctx context.Context) ([]Finding, error) {
			return s.detectAttendanceRisks(ctx, schoolID)
		}},
		{category: "finance", run: func(ctx context.Context) ([]Finding, error) {
			return s.detectBudgetRisks(ctx, schoolID)
		}},
		{category: "assets", run: func(ctx context.Context) ([]Finding, error) {
			return s.detectAssetRisks(ctx, schoolID)
		}},
		{category: "teacher_coverage", run: func(ctx context.Context) ([]Finding, error) {
			return s.detectEvaluationGaps(ctx, schoolID)
		}},
		{category: "deadlines", run: func(ctx context.Context) ([]Finding, error) {
			return s.detectMaintenanceDeadlines(ctx, schoolID)
		}},
	}
	findings, errs, rateLimited := runSubTasks(ctx, tasks)
	if rateLimited && len(findings) == 0 {
		return nil, gateway.ErrRateLimited
	}

	summary.Findings = findings
	summary.Generated = len(findings)
	summary.Errors = append(summary.Errors, errs...)
	if save && len(findings) > 0 {
		saved, skipped, saveErrs := saveWarnings(s.DB, schoolID, findings)
		summary.Saved = saved
		summary.Skipped = skipped
		summary.Errors = append(summary.Errors, saveErrs...)
	}
	return summary, nil
}

// detectGradeRisks: siswa dengan rata-rata komposit < 60 berisiko tinggal kelas.
func (s *EarlyWarningAnalysisService) detectGradeRisks(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []studentMetricRow
	err := s.DB.Table("students").
		Select(`students.student_id AS student_id,
			students.student_name AS student_name,
			students.student_class AS student_class,
			AVG(academic_records.academic_record_composite_score) AS avg_score`).
		Joins("JOIN academic_records ON academic_records.academic_record_student_id = students.student_id").
		Where("students.student_school_id = ? AND students.student_is_active = true", schoolID).
		Group("students.student_id, students.student_name, students.student_class").
		Having("AVG(academic_records.academic_record_composite_score) < 60").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Siswa berisiko tinggal kelas (rata-rata nilai di bawah 60):\n")
	var affected []string
	for _, r := range rows {
		fmt.Fprintf(&sb, "- %s (kelas %s): rata-rata %.1f\n", r.StudentName, r.StudentClass, r.AvgScore)
		affected = append(affected, r.StudentID.String())
	}
	sb.WriteString("\nJelaskan peringatan dini dan tindakan segera yang disarankan. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "grades",
		"Siswa berisiko tinggal kelas",
		advisoryModel.PriorityCritical,
		affected,
		map[string]interface{}{"student_count": len(rows)},
	), nil
}

// detectAttendanceRisks: kehadiran < 70% dianggap kritis.
func (s *EarlyWarningAnalysisService) detectAttendanceRisks(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []studentMetricRow
	err := s.DB.Table("students").
		Select(`students.student_id AS student_id,
			students.student_name AS student_name,
			students.student_class AS student_class,
			100.0 * COUNT(*) FILTER (WHERE attendance_records.attendance_status = 'hadir') / COUNT(*) AS attendance_rate`).
		Joins("JOIN attendance_records ON attendance_records.attendance_student_id = students.student_id").
		Where("students.student_school_id = ? AND students.student_is_active = true", schoolID).
		Group("students.student_id, students.student_name, students.student_class").
		Having("100.0 * COUNT(*) FILTER (WHERE attendance_records.attendance_status = 'hadir') / COUNT(*) < 70").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Siswa dengan kehadiran kritis (di bawah 70%):\n")
	var affected []string
	for _, r := range rows {
		fmt.Fprintf(&sb, "- %s (kelas %s): kehadiran %.1f%%\n", r.StudentName, r.StudentClass, r.AttendanceRate)
		affected = append(affected, r.StudentID.String())
	}
	sb.WriteString("\nJelaskan peringatan dini dan langkah pendampingan. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "attendance",
		"Kehadiran siswa kritis",
		advisoryModel.PriorityCritical,
		affected,
		map[string]interface{}{"student_count": len(rows)},
	), nil
}

type budgetRiskRow struct {
	SchoolFinanceID       uuid.UUID
	SchoolFinanceCategory string
	UsageRate             float64
}

// detectBudgetRisks: pemakaian anggaran > 90% dari plafon.
func (s *EarlyWarningAnalysisService) detectBudgetRisks(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []budgetRiskRow
	err := s.DB.Table("school_finances").
		Select(`school_finance_id,
			school_finance_category,
			100.0 * school_finance_used_amount / NULLIF(school_finance_budget_amount, 0) AS usage_rate`).
		Where("school_finance_school_id = ?", schoolID).
		Where("school_finance_budget_amount > 0").
		Where("100.0 * school_finance_used_amount / school_finance_budget_amount > 90").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Anggaran dengan pemakaian di atas 90% dari plafon:\n")
	var affected []string
	for _, r := range rows {
		fmt.Fprintf(&sb, "- Kategori %s: terpakai %.1f%%\n", r.SchoolFinanceCategory, r.UsageRate)
		affected = append(affected, r.SchoolFinanceID.String())
	}
	sb.WriteString("\nJelaskan risiko keuangan dan langkah pengendalian. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "finance",
		"Pemakaian anggaran mendekati plafon",
		advisoryModel.PriorityHigh,
		affected,
		map[string]interface{}{"budget_count": len(rows)},
	), nil
}

type assetRiskRow struct {
	AssetID        uuid.UUID
	AssetName      string
	AssetCondition string
}

// detectAssetRisks: aset rusak berat atau masih dalam perbaikan.
func (s *EarlyWarningAnalysisService) detectAssetRisks(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []assetRiskRow
	err := s.DB.Table("assets").
		Select("asset_id, asset_name, asset_condition").
		Where("asset_school_id = ?", schoolID).
		Where("asset_condition IN ?", []string{"major_damage", "under_repair"}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Aset dalam kondisi rusak berat atau perbaikan:\n")
	var affected []string
	for _, r := range rows {
		fmt.Fprintf(&sb, "- %s: %s\n", r.AssetName, r.AssetCondition)
		affected = append(affected, r.AssetID.String())
	}
	sb.WriteString("\nJelaskan dampak operasional dan prioritas perbaikan. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "assets",
		"Aset memerlukan perbaikan",
		advisoryModel.PriorityMedium,
		affected,
		map[string]interface{}{"asset_count": len(rows)},
	), nil
}

type teacherGapRow struct {
	UserID   uuid.UUID
	UserName string
}

// detectEvaluationGaps: guru aktif yang belum pernah dievaluasi.
func (s *EarlyWarningAnalysisService) detectEvaluationGaps(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	var rows []teacherGapRow
	err := s.DB.Table("users").
		Select("users.user_id, users.user_name").
		Where("users.user_school_id = ? AND users.user_role = ?", schoolID, "teacher").
		Where("users.user_id NOT IN (?)", s.DB.Table("teacher_performances").
			Select("teacher_performance_teacher_id").
			Where("teacher_performance_school_id = ?", schoolID)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("Guru yang belum memiliki evaluasi kinerja:\n")
	var affected []string
	for _, r := range rows {
		fmt.Fprintf(&sb, "- %s\n", r.UserName)
		affected = append(affected, r.UserID.String())
	}
	sb.WriteString("\nJelaskan risiko cakupan evaluasi dan jadwal yang disarankan. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "teacher_coverage",
		"Evaluasi kinerja guru belum lengkap",
		advisoryModel.PriorityMedium,
		affected,
		map[string]interface{}{"teacher_count": len(rows)},
	), nil
}

type maintenanceDeadlineRow struct {
	AssetMaintenanceID   uuid.UUID
	AssetName            string
	AssetMaintenanceDate time.Time
}

// detectMaintenanceDeadlines: pemeliharaan terjadwal yang sudah lewat
// tanggal atau jatuh tempo dalam 7 hari ke depan.
func (s *EarlyWarningAnalysisService) detectMaintenanceDeadlines(ctx context.Context, schoolID uuid.UUID) ([]Finding, error) {
	today := time.Now().Truncate(24 * time.Hour)
	horizon := today.AddDate(0, 0, MaintenanceDeadlineWindowDays)

	var rows []maintenanceDeadlineRow
	err := s.DB.Table("asset_maintenances").
		Select(`asset_maintenances.asset_maintenance_id,
			assets.asset_name AS asset_name,
			asset_maintenances.asset_maintenance_date`).
		Joins("JOIN assets ON assets.asset_id = asset_maintenances.asset_maintenance_asset_id").
		Where("asset_maintenances.asset_maintenance_school_id = ?", schoolID).
		Where("asset_maintenances.asset_maintenance_status = ?", "scheduled").
		Where("asset_maintenances.asset_maintenance_date <= ?", horizon).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	urgency := advisoryModel.PriorityMedium
	var sb strings.Builder
	sb.WriteString("Pemeliharaan aset terjadwal yang lewat tanggal atau jatuh tempo dalam 7 hari:\n")
	var affected []string
	for _, r := range rows {
		label := "jatuh tempo"
		if MaintenanceDeadlineUrgency(r.AssetMaintenanceDate, today) == advisoryModel.PriorityHigh {
			urgency = advisoryModel.PriorityHigh
			label = "terlewati"
		}
		fmt.Fprintf(&sb, "- %s: jadwal %s (%s)\n", r.AssetName, r.AssetMaintenanceDate.Format("2006-01-02"), label)
		affected = append(affected, r.AssetMaintenanceID.String())
	}
	sb.WriteString("\nJelaskan risiko keterlambatan pemeliharaan dan urutan pengerjaan yang disarankan. ")
	sb.WriteString(`Balas dalam JSON: {"recommendations":[{"title":"...","description":"...","priority":"low|medium|high|critical"}]}`)

	res, err := s.Gateway.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	return parseFindings(res, "deadlines",
		"Tenggat pemeliharaan aset terlewati atau mendekat",
		urgency,
		affected,
		map[string]interface{}{"maintenance_count": len(rows)},
	), nil
}
