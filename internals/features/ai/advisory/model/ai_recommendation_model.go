// file: internals/features/ai/advisory/model/ai_recommendation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RecommendationStatus string

const (
	RecommendationStatusPending     RecommendationStatus = "pending"
	RecommendationStatusInProgress  RecommendationStatus = "in_progress"
	RecommendationStatusImplemented RecommendationStatus = "implemented"
	RecommendationStatusDismissed   RecommendationStatus = "dismissed"
)

func (s RecommendationStatus) Valid() bool {
	switch s {
	case RecommendationStatusPending, RecommendationStatusInProgress,
		RecommendationStatusImplemented, RecommendationStatusDismissed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AiRecommendation dihasilkan layanan analisis, bukan input pengguna.
type AiRecommendation struct {
	AiRecommendationID uuid.UUID `json:"ai_recommendation_id" gorm:"column:ai_recommendation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AiRecommendationSchoolID uuid.UUID `json:"ai_recommendation_school_id" gorm:"column:ai_recommendation_school_id;type:uuid;not null;index"`

	AiRecommendationCategory    string `json:"ai_recommendation_category" gorm:"column:ai_recommendation_category;type:varchar(40);not null;index"`
	AiRecommendationTitle       string `json:"ai_recommendation_title" gorm:"column:ai_recommendation_title;type:varchar(200);not null"`
	AiRecommendationDescription string `json:"ai_recommendation_description" gorm:"column:ai_recommendation_description;type:text;not null"`

	AiRecommendationPriority Priority             `json:"ai_recommendation_priority" gorm:"column:ai_recommendation_priority;type:varchar(10);not null;default:'medium'"`
	AiRecommendationStatus   RecommendationStatus `json:"ai_recommendation_status" gorm:"column:ai_recommendation_status;type:varchar(15);not null;default:'pending'"`

	AiRecommendationConfidence float64        `json:"ai_recommendation_confidence" gorm:"column:ai_recommendation_confidence;type:numeric(4,2);not null;default:0"`
	AiRecommendationMetadata   datatypes.JSON `json:"ai_recommendation_metadata,omitempty" gorm:"column:ai_recommendation_metadata;type:jsonb"`

	AiRecommendationGeneratedDate time.Time `json:"ai_recommendation_generated_date" gorm:"column:ai_recommendation_generated_date;type:timestamptz;not null;default:now();index"`

	AiRecommendationCreatedAt time.Time `json:"ai_recommendation_created_at" gorm:"column:ai_recommendation_created_at;type:timestamptz;not null;default:now()"`
	AiRecommendationUpdatedAt time.Time `json:"ai_recommendation_updated_at" gorm:"column:ai_recommendation_updated_at;type:timestamptz;not null;default:now()"`
}

func (AiRecommendation) TableName() string { return "ai_recommendations" }
