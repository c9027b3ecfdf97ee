package models

import (
	"github.com/google/uuid"
)

// RiskCategory is the enumerated risk domain a gap belongs to and a vendor
// may cover.
type RiskCategory string

const (
	RiskCategoryAccessControl     RiskCategory = "access_control"
	RiskCategoryDataProtection    RiskCategory = "data_protection"
	RiskCategoryNetworkSecurity   RiskCategory = "network_security"
	RiskCategoryIncidentResponse  RiskCategory = "incident_response"
	RiskCategoryGovernance        RiskCategory = "governance"
	RiskCategoryVendorManagement  RiskCategory = "vendor_management"
	RiskCategoryPhysicalSecurity  RiskCategory = "physical_security"
	RiskCategoryAwarenessTraining RiskCategory = "awareness_training"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// CostRange is an ordinal cost-range bucket. The numeric midpoints used for
// roadmap aggregation live in the strategy package.
type CostRange string

const (
	CostRangeUnder5K   CostRange = "under_5k"
	CostRange5KTo15K   CostRange = "5k_15k"
	CostRange15KTo50K  CostRange = "15k_50k"
	CostRange50KTo100K CostRange = "50k_100k"
	CostRangeOver100K  CostRange = "over_100k"
)

type EffortSize string

const (
	EffortSmall  EffortSize = "small"
	EffortMedium EffortSize = "medium"
	EffortLarge  EffortSize = "large"
)

// Gap is a compliance deficiency found during assessment analysis. Gaps are
// owned by the assessment and treated as read-only by the engine.
type Gap struct {
	Model
	AssessmentID uuid.UUID    `json:"assessmentId" gorm:"type:uuid;not null;index;"`
	Title        string       `json:"title" gorm:"type:text;not null;"`
	Description  string       `json:"description" gorm:"type:text;"`
	Category     RiskCategory `json:"category" gorm:"type:text;not null;"`
	Severity     Severity     `json:"severity" gorm:"type:text;not null;"`
	// Priority is the qualitative urgency bucket, PriorityScore (1-10) drives
	// the timeline bucketing. A nil PriorityScore means "not yet triaged" -
	// such gaps are excluded from the strategy matrix buckets.
	Priority        Severity   `json:"priority" gorm:"type:text;not null;"`
	PriorityScore   *int       `json:"priorityScore" gorm:"type:integer;"`
	EstimatedCost   *CostRange `json:"estimatedCost" gorm:"type:text;"`
	EstimatedEffort EffortSize `json:"estimatedEffort" gorm:"type:text;not null;default:'medium';"`
}

func (m Gap) TableName() string {
	return "gaps"
}
