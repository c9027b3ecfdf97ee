package models

import (
	"github.com/google/uuid"
)

// EvidenceTier classifies how an answer was substantiated. Higher tiers carry
// more weight in the confidence-adjusted score.
type EvidenceTier string

const (
	// EvidenceTier0 - self-declared, no supporting evidence
	EvidenceTier0 EvidenceTier = "TIER_0"
	// EvidenceTier1 - claimed with evidence attached
	EvidenceTier1 EvidenceTier = "TIER_1"
	// EvidenceTier2 - derived from document analysis
	EvidenceTier2 EvidenceTier = "TIER_2"
)

type AnswerStatus string

const (
	AnswerStatusPending  AnswerStatus = "pending"
	AnswerStatusAnswered AnswerStatus = "answered"
)

// Answer is one per (assessment, question) pair. FinalScore is the
// evidence-adjusted score written by the upstream answer pipeline
// (rawScore * tier multiplier); the evidence scorer falls back to the raw
// Score when it is absent.
type Answer struct {
	Model
	AssessmentID uuid.UUID    `json:"assessmentId" gorm:"type:uuid;not null;uniqueIndex:idx_answer_assessment_question;"`
	QuestionID   uuid.UUID    `json:"questionId" gorm:"type:uuid;not null;uniqueIndex:idx_answer_assessment_question;"`
	Score        int          `json:"score" gorm:"not null;default:0;"`
	EvidenceTier EvidenceTier `json:"evidenceTier" gorm:"type:text;not null;default:'TIER_0';"`
	FinalScore   *float64     `json:"finalScore" gorm:"type:decimal(4,2);"`
	Status       AnswerStatus `json:"status" gorm:"type:text;not null;default:'pending';"`
}

func (m Answer) TableName() string {
	return "answers"
}
