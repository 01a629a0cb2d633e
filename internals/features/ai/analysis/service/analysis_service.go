// file: internals/features/ai/analysis/service/analysis_service.go
//
// Kerangka bersama untuk layanan analisis:
// GATHER -> VALIDATE_QUALITY -> ANALYZE_* (paralel) -> SUMMARIZE -> SAVE.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	advisoryModel "schoolku_backend/internals/features/ai/advisory/model"
	gateway "schoolku_backend/internals/features/ai/gateway"
)

// Finding adalah satu butir keluaran analisis sebelum dipersistenkan.
type Finding struct {
	Category         string                 `json:"category"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Urgency          advisoryModel.Priority `json:"urgency"`
	AffectedEntities []string               `json:"affected_entities,omitempty"`
	Confidence       float64                `json:"confidence"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// RunSummary merangkum satu run analisis.
type RunSummary struct {
	QualityScore float64   `json:"quality_score"`
	Generated    int       `json:"generated"`
	Saved        int       `json:"saved"`
	Skipped      int       `json:"skipped"`
	Findings     []Finding `json:"findings"`
	Errors       []string  `json:"errors,omitempty"`
}

type subTask struct {
	category string
	run      func(ctx context.Context) ([]Finding, error)
}

// runSubTasks menjalankan sub-analisis secara paralel dengan join settle-all:
// kegagalan satu sub-task tidak menggagalkan yang lain, hanya dicatat
// sebagai string error per kategori. rateLimited bernilai true bila ada
// kegagalan dan semuanya berasal dari kuota gateway.
func runSubTasks(ctx context.Context, tasks []subTask) (findings []Finding, errStrings []string, rateLimited bool) {
	var wg sync.WaitGroup
	results := make([][]Finding, len(tasks))
	taskErrs := make([]error, len(tasks))

	for i := range tasks {
		wg.Add(1)
		go func(idx int, t subTask) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					taskErrs[idx] = fmt.Errorf("%s: panic: %v", t.category, r)
				}
			}()
			res, err := t.run(ctx)
			if err != nil {
				taskErrs[idx] = fmt.Errorf("%s: %w", t.category, err)
				return
			}
			results[idx] = res
		}(i, tasks[i])
	}
	wg.Wait()

	for _, r := range results {
		findings = append(findings, r...)
	}
	allRateLimited := true
	for _, e := range taskErrs {
		if e == nil {
			continue
		}
		errStrings = append(errStrings, e.Error())
		if !errors.Is(e, gateway.ErrRateLimited) {
			allRateLimited = false
		}
	}
	return findings, errStrings, len(errStrings) > 0 && allRateLimited
}

// parseFindings memetakan hasil gateway ke Finding. Keluaran JSON model
// diharapkan berbentuk {"recommendations":[{"title","description","priority"}]};
// selain itu teks mentah dipakai utuh sebagai satu butir.
func parseFindings(res *gateway.Result, category, fallbackTitle string, urgency advisoryModel.Priority, affected []string, meta map[string]interface{}) []Finding {
	base := Finding{
		Category:         category,
		Urgency:          urgency,
		AffectedEntities: affected,
		Confidence:       res.Confidence,
		Metadata:         meta,
	}

	if res.IsJSON() {
		if raw, ok := res.Parsed["recommendations"].([]interface{}); ok && len(raw) > 0 {
			var out []Finding
			for _, item := range raw {
				m, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				f := base
				f.Title, _ = m["title"].(string)
				f.Description, _ = m["description"].(string)
				if p, ok := m["priority"].(string); ok && p != "" {
					f.Urgency = advisoryModel.Priority(p)
				}
				if f.Title == "" {
					f.Title = fallbackTitle
				}
				if f.Description == "" {
					f.Description = res.Raw
				}
				out = append(out, f)
			}
			if len(out) > 0 {
				return out
			}
		}
	}

	base.Title = fallbackTitle
	base.Description = res.Raw
	return []Finding{base}
}

func marshalMetadata(meta map[string]interface{}) datatypes.JSON {
	if len(meta) == 0 {
		return nil
	}
	raw, err := sonic.Marshal(meta)
	if err != nil {
		log.Println("[ERROR] Gagal serialisasi metadata analisis:", err)
		return nil
	}
	return datatypes.JSON(raw)
}

// saveRecommendations menyimpan temuan sebagai AiRecommendation dengan
// dedup: baris kategori sama yang judulnya berawalan sama dan dibuat
// dalam 24 jam terakhir dianggap duplikat dan dilewati.
func saveRecommendations(db *gorm.DB, schoolID uuid.UUID, findings []Finding) (saved, skipped int, errs []string) {
	cutoff := time.Now().Add(-24 * time.Hour)
	for i := range findings {
		f := &findings[i]
		prefix := TitleDedupPrefix(f.Title)

		var count int64
		err := db.Model(&advisoryModel.AiRecommendation{}).
			Where("ai_recommendation_school_id = ? AND ai_recommendation_category = ? AND ai_recommendation_title LIKE ? AND ai_recommendation_generated_date >= ?",
				schoolID, f.Category, EscapeLikePattern(prefix)+"%", cutoff).
			Count(&count).Error
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.Category, err))
			continue
		}
		if count > 0 {
			skipped++
			continue
		}

		rec := advisoryModel.AiRecommendation{
			AiRecommendationSchoolID:      schoolID,
			AiRecommendationCategory:      f.Category,
			AiRecommendationTitle:         f.Title,
			AiRecommendationDescription:   f.Description,
			AiRecommendationPriority:      f.Urgency,
			AiRecommendationStatus:        advisoryModel.RecommendationStatusPending,
			AiRecommendationConfidence:    f.Confidence,
			AiRecommendationMetadata:      marshalMetadata(f.Metadata),
			AiRecommendationGeneratedDate: time.Now(),
		}
		if err := db.Create(&rec).Error; err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.Category, err))
			continue
		}
		saved++
	}
	return saved, skipped, errs
}

// saveWarnings: dedup yang sama untuk EarlyWarning.
func saveWarnings(db *gorm.DB, schoolID uuid.UUID, findings []Finding) (saved, skipped int, errs []string) {
	cutoff := time.Now().Add(-24 * time.Hour)
	for i := range findings {
		f := &findings[i]
		prefix := TitleDedupPrefix(f.Title)

		var count int64
		err := db.Model(&advisoryModel.EarlyWarning{}).
			Where("early_warning_school_id = ? AND early_warning_category = ? AND early_warning_title LIKE ? AND early_warning_detected_date >= ?",
				schoolID, f.Category, EscapeLikePattern(prefix)+"%", cutoff).
			Count(&count).Error
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.Category, err))
			continue
		}
		if count > 0 {
			skipped++
			continue
		}

		warning := advisoryModel.EarlyWarning{
			EarlyWarningSchoolID:         schoolID,
			EarlyWarningCategory:         f.Category,
			EarlyWarningTitle:            f.Title,
			EarlyWarningDescription:      f.Description,
			EarlyWarningUrgency:          f.Urgency,
			EarlyWarningStatus:           advisoryModel.WarningStatusActive,
			EarlyWarningAffectedEntities: pq.StringArray(f.AffectedEntities),
			EarlyWarningConfidence:       f.Confidence,
			EarlyWarningMetadata:         marshalMetadata(f.Metadata),
			EarlyWarningDetectedDate:     time.Now(),
		}
		if err := db.Create(&warning).Error; err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.Category, err))
			continue
		}
		saved++
	}
	return saved, skipped, errs
}
