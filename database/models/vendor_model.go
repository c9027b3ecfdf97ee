package models

import (
	"gorm.io/datatypes"
)

type VendorStatus string

const (
	VendorStatusPending  VendorStatus = "pending"
	VendorStatusApproved VendorStatus = "approved"
	VendorStatusRejected VendorStatus = "rejected"
)

type SizeSegment string

const (
	SizeSegmentMicro      SizeSegment = "micro"
	SizeSegmentSmall      SizeSegment = "small"
	SizeSegmentMedium     SizeSegment = "medium"
	SizeSegmentLarge      SizeSegment = "large"
	SizeSegmentEnterprise SizeSegment = "enterprise"
)

type PricingTier string

const (
	PricingTierBudget     PricingTier = "budget"
	PricingTierMidMarket  PricingTier = "mid_market"
	PricingTierPremium    PricingTier = "premium"
	PricingTierEnterprise PricingTier = "enterprise"
)

type DeploymentMode string

const (
	DeploymentCloud  DeploymentMode = "cloud"
	DeploymentOnPrem DeploymentMode = "on_prem"
	DeploymentHybrid DeploymentMode = "hybrid"
)

type ImplementationTime string

const (
	ImplementationFast     ImplementationTime = "fast"
	ImplementationModerate ImplementationTime = "moderate"
	ImplementationSlow     ImplementationTime = "slow"
)

// GeoGlobal marks a vendor as covering every region.
const GeoGlobal = "global"

// Vendor is a marketplace participant. Vendor identity and eligibility are
// owned by the vendor lifecycle subsystem - the matching engine only reads
// approved vendors.
type Vendor struct {
	Model
	Name   string       `json:"name" gorm:"type:text;not null;"`
	Slug   string       `json:"slug" gorm:"type:text;uniqueIndex;not null;"`
	Status VendorStatus `json:"status" gorm:"type:text;not null;default:'pending';index;"`

	Categories         datatypes.JSONSlice[RiskCategory]   `json:"categories" gorm:"type:jsonb;"`
	TargetSize         *SizeSegment                        `json:"targetSize" gorm:"type:text;"`
	Regions            datatypes.JSONSlice[string]         `json:"regions" gorm:"type:jsonb;"`
	PricingTier        *PricingTier                        `json:"pricingTier" gorm:"type:text;"`
	FeatureTags        datatypes.JSONSlice[string]         `json:"featureTags" gorm:"type:jsonb;"`
	DeploymentModes    datatypes.JSONSlice[DeploymentMode] `json:"deploymentModes" gorm:"type:jsonb;"`
	ImplementationTime *ImplementationTime                 `json:"implementationTime" gorm:"type:text;"`

	// analytics only - never read by scoring
	ClickCount int `json:"clickCount" gorm:"default:0;not null;"`
}

func (m Vendor) TableName() string {
	return "vendors"
}

// PrimaryCategory is the first category in the vendor's category set. It is
// what the top-priority boost compares against.
func (m Vendor) PrimaryCategory() (RiskCategory, bool) {
	if len(m.Categories) == 0 {
		return "", false
	}
	return m.Categories[0], true
}

func (m Vendor) CoversCategory(category RiskCategory) bool {
	for _, c := range m.Categories {
		if c == category {
			return true
		}
	}
	return false
}
