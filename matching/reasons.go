package matching

import (
	"fmt"
	"strings"

	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
)

// GenerateMatchReasons emits one human-readable sentence per scoring
// dimension that contributed non-trivially. The order is fixed - base-score
// dimensions before boost dimensions - so identical inputs always yield the
// identical reason list.
func GenerateMatchReasons(vendor models.Vendor, base dtos.BaseScore, boost dtos.PriorityBoost) []string {
	reasons := make([]string, 0, 8)

	if base.CoveredRiskAreas > 0 {
		if base.CoveredRiskAreas == 1 {
			reasons = append(reasons, "Covers 1 of your top risk areas")
		} else {
			reasons = append(reasons, fmt.Sprintf("Covers %d of your top risk areas", base.CoveredRiskAreas))
		}
	}
	if base.SizeFit == SizeFitMax {
		reasons = append(reasons, "Strong fit for organizations of your size")
	}
	if base.GeoCoverage == GeoCoverageMax {
		reasons = append(reasons, "Operates in your region")
	}
	if base.PriceScore == PriceScoreMax {
		reasons = append(reasons, "Pricing aligns with your stated budget")
	}

	if boost.TopPriorityBoost > 0 {
		if primary, ok := vendor.PrimaryCategory(); ok {
			reasons = append(reasons, fmt.Sprintf("Specializes in %s, your top stated priority", humanizeCategory(primary)))
		}
	}
	if boost.FeatureBoost > 0 {
		if boost.FeatureOverlap == 1 {
			reasons = append(reasons, "Offers 1 of your desired capabilities")
		} else {
			reasons = append(reasons, fmt.Sprintf("Offers %d of your desired capabilities", boost.FeatureOverlap))
		}
	}
	if boost.DeploymentBoost > 0 {
		reasons = append(reasons, "Supports your preferred deployment model")
	}
	if boost.SpeedBoost > 0 {
		reasons = append(reasons, "Implementation timeline matches your urgency")
	}

	return reasons
}

func humanizeCategory(category models.RiskCategory) string {
	return strings.ReplaceAll(string(category), "_", " ")
}
