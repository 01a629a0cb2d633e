// file: internals/features/ai/advisory/dto/advisory_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/ai/advisory/model"
)

type UpdateRecommendationStatusRequest struct {
	AiRecommendationStatus string `json:"ai_recommendation_status" validate:"required,oneof=pending in_progress implemented dismissed"`
}

type UpdateWarningStatusRequest struct {
	EarlyWarningStatus string `json:"early_warning_status" validate:"required,oneof=active resolved ignored"`
}

type RecommendationResponse struct {
	AiRecommendationID            uuid.UUID      `json:"ai_recommendation_id"`
	AiRecommendationCategory      string         `json:"ai_recommendation_category"`
	AiRecommendationTitle         string         `json:"ai_recommendation_title"`
	AiRecommendationDescription   string         `json:"ai_recommendation_description"`
	AiRecommendationPriority      string         `json:"ai_recommendation_priority"`
	AiRecommendationStatus        string         `json:"ai_recommendation_status"`
	AiRecommendationConfidence    float64        `json:"ai_recommendation_confidence"`
	AiRecommendationMetadata      datatypes.JSON `json:"ai_recommendation_metadata,omitempty"`
	AiRecommendationGeneratedDate time.Time      `json:"ai_recommendation_generated_date"`
}

func FromModelRecommendation(r *model.AiRecommendation) RecommendationResponse {
	return RecommendationResponse{
		AiRecommendationID:            r.AiRecommendationID,
		AiRecommendationCategory:      r.AiRecommendationCategory,
		AiRecommendationTitle:         r.AiRecommendationTitle,
		AiRecommendationDescription:   r.AiRecommendationDescription,
		AiRecommendationPriority:      string(r.AiRecommendationPriority),
		AiRecommendationStatus:        string(r.AiRecommendationStatus),
		AiRecommendationConfidence:    r.AiRecommendationConfidence,
		AiRecommendationMetadata:      r.AiRecommendationMetadata,
		AiRecommendationGeneratedDate: r.AiRecommendationGeneratedDate,
	}
}

func FromModelRecommendations(list []model.AiRecommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelRecommendation(&list[i]))
	}
	return out
}

type WarningResponse struct {
	EarlyWarningID               uuid.UUID      `json:"early_warning_id"`
	EarlyWarningCategory         string         `json:"early_warning_category"`
	EarlyWarningTitle            string         `json:"early_warning_title"`
	EarlyWarningDescription      string         `json:"early_warning_description"`
	EarlyWarningUrgency          string         `json:"early_warning_urgency"`
	EarlyWarningStatus           string         `json:"early_warning_status"`
	EarlyWarningAffectedEntities []string       `json:"early_warning_affected_entities"`
	EarlyWarningConfidence       float64        `json:"early_warning_confidence"`
	EarlyWarningMetadata         datatypes.JSON `json:"early_warning_metadata,omitempty"`
	EarlyWarningDetectedDate     time.Time      `json:"early_warning_detected_date"`
}

func FromModelWarning(w *model.EarlyWarning) WarningResponse {
	return WarningResponse{
		EarlyWarningID:               w.EarlyWarningID,
		EarlyWarningCategory:         w.EarlyWarningCategory,
		EarlyWarningTitle:            w.EarlyWarningTitle,
		EarlyWarningDescription:      w.EarlyWarningDescription,
		EarlyWarningUrgency:          string(w.EarlyWarningUrgency),
		EarlyWarningStatus:           string(w.EarlyWarningStatus),
		EarlyWarningAffectedEntities: []string(w.EarlyWarningAffectedEntities),
		EarlyWarningConfidence:       w.EarlyWarningConfidence,
		EarlyWarningMetadata:         w.EarlyWarningMetadata,
		EarlyWarningDetectedDate:     w.EarlyWarningDetectedDate,
	}
}

func FromModelWarnings(list []model.EarlyWarning) []WarningResponse {
	out := make([]WarningResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelWarning(&list[i]))
	}
	return out
}
