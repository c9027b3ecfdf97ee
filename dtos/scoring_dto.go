package dtos

import (
	"github.com/google/uuid"
)

// BaseScore is the per-vendor objective fit breakdown, independent of any
// user-expressed preference. TotalBase is the unweighted sum of the four
// components.
type BaseScore struct {
	RiskAreaCoverage int `json:"riskAreaCoverage"`
	SizeFit          int `json:"sizeFit"`
	GeoCoverage      int `json:"geoCoverage"`
	PriceScore       int `json:"priceScore"`
	TotalBase        int `json:"totalBase"`

	// CoveredRiskAreas is the number of distinct gap categories the vendor
	// covers. Carried so match reasons stay derivable from the breakdown.
	CoveredRiskAreas int `json:"coveredRiskAreas"`
}

// PriorityBoost is the additive adjustment reflecting how well a vendor
// aligns with the priorities questionnaire. TotalBoost is the unweighted sum
// of the four sub-boosts; the engine-level cap is applied later, never here.
type PriorityBoost struct {
	TopPriorityBoost int `json:"topPriorityBoost"`
	FeatureBoost     int `json:"featureBoost"`
	DeploymentBoost  int `json:"deploymentBoost"`
	SpeedBoost       int `json:"speedBoost"`
	TotalBoost       int `json:"totalBoost"`

	// FeatureOverlap is the number of overlapping feature tags behind
	// FeatureBoost, before the per-field cap.
	FeatureOverlap int `json:"featureOverlap"`
}

type VendorMatchScore struct {
	VendorID      uuid.UUID     `json:"vendorId"`
	VendorName    string        `json:"vendorName"`
	VendorSlug    string        `json:"vendorSlug"`
	BaseScore     BaseScore     `json:"baseScore"`
	PriorityBoost PriorityBoost `json:"priorityBoost"`
	TotalScore    int           `json:"totalScore"`
	MatchReasons  []string      `json:"matchReasons"`
}
