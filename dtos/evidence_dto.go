package dtos

import (
	"github.com/google/uuid"
)

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

type TierStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type EvidenceDistribution struct {
	Tier0 TierStat `json:"tier0"`
	Tier1 TierStat `json:"tier1"`
	Tier2 TierStat `json:"tier2"`
}

type SectionScore struct {
	SectionID     uuid.UUID `json:"sectionId"`
	Name          string    `json:"name"`
	Weight        float64   `json:"weight"`
	Score         float64   `json:"score"`
	AnsweredCount int       `json:"answeredCount"`
	QuestionCount int       `json:"questionCount"`
}

// EvidenceWeightedResult is computed on demand and never persisted.
type EvidenceWeightedResult struct {
	OverallScore         float64              `json:"overallScore"`
	ConfidenceLevel      ConfidenceLevel      `json:"confidenceLevel"`
	EvidenceDistribution EvidenceDistribution `json:"evidenceDistribution"`
	SectionBreakdown     []SectionScore       `json:"sectionBreakdown"`
}

type EnhancedResults struct {
	EvidenceWeightedResult
	HasPriorities bool     `json:"hasPriorities"`
	Methodology   []string `json:"methodology"`
}
