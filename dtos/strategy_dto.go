package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
)

type EffortDistribution struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

type TimelineVendor struct {
	VendorID      uuid.UUID `json:"vendorId"`
	VendorName    string    `json:"vendorName"`
	CoverageCount int       `json:"coverageCount"`
}

type TimelineBucket struct {
	Timeline           string             `json:"timeline"`
	Gaps               []models.Gap       `json:"gaps"`
	GapCount           int                `json:"gapCount"`
	EffortDistribution EffortDistribution `json:"effortDistribution"`
	EstimatedCostRange string             `json:"estimatedCostRange"`
	TopVendors         []TimelineVendor   `json:"topVendors"`
}

// StrategyMatrix is the three-bucket remediation roadmap. UntriagedCount
// reports gaps without a priority score - they belong to no bucket.
type StrategyMatrix struct {
	AssessmentID   uuid.UUID      `json:"assessmentId"`
	GeneratedAt    time.Time      `json:"generatedAt"`
	Immediate      TimelineBucket `json:"immediate"`
	NearTerm       TimelineBucket `json:"nearTerm"`
	Strategic      TimelineBucket `json:"strategic"`
	UntriagedCount int            `json:"untriagedCount"`
}
