package matching

import (
	"math"
	"strings"

	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/utils"
)

var sizeSegmentOrder = map[models.SizeSegment]int{
	models.SizeSegmentMicro:      0,
	models.SizeSegmentSmall:      1,
	models.SizeSegmentMedium:     2,
	models.SizeSegmentLarge:      3,
	models.SizeSegmentEnterprise: 4,
}

// budget bands and pricing tiers are parallel ordinal scales - index
// distance is the alignment measure
var budgetBandOrder = map[models.BudgetBand]int{
	models.BudgetUnder10K:  0,
	models.Budget10KTo50K:  1,
	models.Budget50KTo200K: 2,
	models.BudgetOver200K:  3,
}

var pricingTierOrder = map[models.PricingTier]int{
	models.PricingTierBudget:     0,
	models.PricingTierMidMarket:  1,
	models.PricingTierPremium:    2,
	models.PricingTierEnterprise: 3,
}

// CalculateBaseScore computes the vendor's objective fit against the
// assessment's gap set, independent of any stated preference. Missing data on
// either side degrades the affected dimension to its neutral value - every
// approved vendor always gets a score.
func CalculateBaseScore(vendor models.Vendor, gaps []models.Gap, priorities models.AssessmentPriorities) dtos.BaseScore {
	coverage, covered := riskAreaCoverage(vendor, gaps)

	score := dtos.BaseScore{
		RiskAreaCoverage: coverage,
		SizeFit:          sizeFit(vendor, priorities),
		GeoCoverage:      geoCoverage(vendor, priorities),
		PriceScore:       priceScore(vendor, priorities),
		CoveredRiskAreas: covered,
	}
	score.TotalBase = score.RiskAreaCoverage + score.SizeFit + score.GeoCoverage + score.PriceScore
	return score
}

// riskAreaCoverage grants proportional credit for each distinct gap category
// the vendor covers, scaled into the fixed point budget.
func riskAreaCoverage(vendor models.Vendor, gaps []models.Gap) (int, int) {
	if len(gaps) == 0 || len(vendor.Categories) == 0 {
		return RiskAreaNeutral, 0
	}

	categories := utils.UniqBy(utils.Map(gaps, func(g models.Gap) models.RiskCategory {
		return g.Category
	}), func(c models.RiskCategory) models.RiskCategory { return c })

	covered := utils.CountBy(categories, vendor.CoversCategory)

	proportion := float64(covered) / float64(len(categories))
	return int(math.Round(proportion * RiskAreaCoverageMax)), covered
}

func sizeFit(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	if vendor.TargetSize == nil || priorities.OrganizationSize == nil {
		return SizeFitNeutral
	}

	distance := sizeSegmentOrder[*vendor.TargetSize] - sizeSegmentOrder[*priorities.OrganizationSize]
	if distance < 0 {
		distance = -distance
	}

	switch distance {
	case 0:
		return SizeFitMax
	case 1:
		return SizeFitAdjacent
	default:
		return SizeFitMismatch
	}
}

func geoCoverage(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	geography := utils.SafeDereference(priorities.Geography)
	if geography == "" || len(vendor.Regions) == 0 {
		return GeoNeutral
	}

	for _, region := range vendor.Regions {
		if strings.EqualFold(region, geography) || strings.EqualFold(region, models.GeoGlobal) {
			return GeoCoverageMax
		}
	}

	// operates elsewhere - partial credit, the vendor is at least
	// multi-region capable
	return GeoPartial
}

func priceScore(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	// an unspecified budget is neutral, never a penalty
	if vendor.PricingTier == nil || priorities.BudgetBand == nil {
		return PriceNeutral
	}

	distance := pricingTierOrder[*vendor.PricingTier] - budgetBandOrder[*priorities.BudgetBand]
	if distance < 0 {
		distance = -distance
	}

	switch distance {
	case 0:
		return PriceScoreMax
	case 1:
		return PriceAdjacent
	default:
		return PriceFar
	}
}

// CalculateTotalScore applies the engine-level cap: base plus boost, never
// above TotalScoreCap.
func CalculateTotalScore(base dtos.BaseScore, boost dtos.PriorityBoost) int {
	total := base.TotalBase + boost.TotalBoost
	if total > TotalScoreCap {
		return TotalScoreCap
	}
	return total
}
