package models

import (
	"crypto/md5" // nolint:gosec // cache key, not a security boundary
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UrgencyPreference string

const (
	UrgencyUrgent  UrgencyPreference = "urgent"
	UrgencySoon    UrgencyPreference = "soon"
	UrgencyPlanned UrgencyPreference = "planned"
)

// BudgetBand is the organization's declared budget, ordinal-aligned with the
// vendor pricing tiers.
type BudgetBand string

const (
	BudgetUnder10K  BudgetBand = "under_10k"
	Budget10KTo50K  BudgetBand = "10k_50k"
	Budget50KTo200K BudgetBand = "50k_200k"
	BudgetOver200K  BudgetBand = "over_200k"
)

// AssessmentPriorities is the one-per-assessment questionnaire capturing the
// organization's stated preferences. Its absence is a precondition failure
// for enhanced matching, not an empty result.
type AssessmentPriorities struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"type:uuid;uniqueIndex;not null;"`

	TopRiskPriority      RiskCategory                `json:"topRiskPriority" gorm:"type:text;not null;"`
	DesiredFeatures      datatypes.JSONSlice[string] `json:"desiredFeatures" gorm:"type:jsonb;"`
	DeploymentPreference *DeploymentMode             `json:"deploymentPreference" gorm:"type:text;"`
	Urgency              *UrgencyPreference          `json:"urgency" gorm:"type:text;"`
	OrganizationSize     *SizeSegment                `json:"organizationSize" gorm:"type:text;"`
	Geography            *string                     `json:"geography" gorm:"type:text;"`
	BudgetBand           *BudgetBand                 `json:"budgetBand" gorm:"type:text;"`
}

func (m AssessmentPriorities) TableName() string {
	return "assessment_priorities"
}

// ContentHash returns a stable hash of the questionnaire payload. It keys the
// vendor-match cache, so identical priorities hit the same cache entry and
// any change rolls the key over.
func (m AssessmentPriorities) ContentHash() string {
	features := make([]string, len(m.DesiredFeatures))
	copy(features, m.DesiredFeatures)

	payload, err := json.Marshal(map[string]any{
		"topRiskPriority":      m.TopRiskPriority,
		"desiredFeatures":      strings.Join(features, ","),
		"deploymentPreference": m.DeploymentPreference,
		"urgency":              m.Urgency,
		"organizationSize":     m.OrganizationSize,
		"geography":            m.Geography,
		"budgetBand":           m.BudgetBand,
	})
	if err != nil {
		// marshal of plain strings cannot fail - fall back to the row id
		return m.ID.String()
	}

	sum := md5.Sum(payload) // nolint:gosec
	return hex.EncodeToString(sum[:])
}
