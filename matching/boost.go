package matching

import (
	"strings"

	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
)

// urgency preference maps onto the vendor's implementation-time profile
var urgencyToImplementationTime = map[models.UrgencyPreference]models.ImplementationTime{
	models.UrgencyUrgent:  models.ImplementationFast,
	models.UrgencySoon:    models.ImplementationModerate,
	models.UrgencyPlanned: models.ImplementationSlow,
}

// CalculatePriorityBoost computes the additive adjustment for alignment with
// the priorities questionnaire. Each sub-boost is capped independently; the
// sum is reported uncapped - the engine-level cap belongs to
// CalculateTotalScore.
func CalculatePriorityBoost(vendor models.Vendor, priorities models.AssessmentPriorities) dtos.PriorityBoost {
	overlap := featureOverlap(vendor, priorities)

	boost := dtos.PriorityBoost{
		TopPriorityBoost: topPriorityBoost(vendor, priorities),
		FeatureBoost:     featureBoost(overlap),
		DeploymentBoost:  deploymentBoost(vendor, priorities),
		SpeedBoost:       speedBoost(vendor, priorities),
		FeatureOverlap:   overlap,
	}
	boost.TotalBoost = boost.TopPriorityBoost + boost.FeatureBoost + boost.DeploymentBoost + boost.SpeedBoost
	return boost
}

func topPriorityBoost(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	primary, ok := vendor.PrimaryCategory()
	if !ok {
		return 0
	}
	if primary == priorities.TopRiskPriority {
		return TopPriorityBoostMax
	}
	return 0
}

func featureOverlap(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	if len(vendor.FeatureTags) == 0 || len(priorities.DesiredFeatures) == 0 {
		return 0
	}

	offered := make(map[string]struct{}, len(vendor.FeatureTags))
	for _, tag := range vendor.FeatureTags {
		offered[normalizeTag(tag)] = struct{}{}
	}

	overlap := 0
	for _, desired := range priorities.DesiredFeatures {
		if _, ok := offered[normalizeTag(desired)]; ok {
			overlap++
		}
	}
	return overlap
}

func featureBoost(overlap int) int {
	boost := overlap * FeatureBoostPerTag
	if boost > FeatureBoostMax {
		return FeatureBoostMax
	}
	return boost
}

func deploymentBoost(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	if priorities.DeploymentPreference == nil {
		return 0
	}
	for _, mode := range vendor.DeploymentModes {
		if mode == *priorities.DeploymentPreference {
			return DeploymentBoostMax
		}
	}
	return 0
}

func speedBoost(vendor models.Vendor, priorities models.AssessmentPriorities) int {
	if priorities.Urgency == nil || vendor.ImplementationTime == nil {
		return 0
	}
	if urgencyToImplementationTime[*priorities.Urgency] == *vendor.ImplementationTime {
		return SpeedBoostMax
	}
	return 0
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
