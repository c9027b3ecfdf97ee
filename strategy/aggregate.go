package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/utils"
)

// costRangeMidpoints maps each ordinal cost range to a fixed numeric
// midpoint in euros. The midpoints are policy constants pinned by tests -
// they directly determine the roadmap's cost figures.
var costRangeMidpoints = map[models.CostRange]int{
	models.CostRangeUnder5K:   2500,
	models.CostRange5KTo15K:   10000,
	models.CostRange15KTo50K:  32500,
	models.CostRange50KTo100K: 75000,
	models.CostRangeOver100K:  150000,
}

const (
	// totals below this are presented as a single figure, above as a
	// variance band
	costBandingThreshold = 10000
	// the band is total +/- 30 percent
	costVarianceLower = 0.7
	costVarianceUpper = 1.3

	topVendorLimit = 3
)

// SumCostRanges maps each gap's cost range to its midpoint, sums across the
// bucket and renders a human figure: "€0" for an empty bucket, a single
// "~€XK" figure below the banding threshold, a "€XK–€YK" band at or above it.
func SumCostRanges(gaps []models.Gap) string {
	total := utils.Reduce(gaps, func(sum int, gap models.Gap) int {
		if gap.EstimatedCost == nil {
			return sum
		}
		return sum + costRangeMidpoints[*gap.EstimatedCost]
	}, 0)

	if total == 0 {
		return "€0"
	}

	if total < costBandingThreshold {
		return fmt.Sprintf("~€%dK", utils.RoundToThousand(float64(total))/1000)
	}

	lower := utils.RoundToThousand(float64(total) * costVarianceLower)
	upper := utils.RoundToThousand(float64(total) * costVarianceUpper)
	return fmt.Sprintf("€%dK–€%dK", lower/1000, upper/1000)
}

func effortDistribution(gaps []models.Gap) dtos.EffortDistribution {
	dist := dtos.EffortDistribution{}
	for _, gap := range gaps {
		switch gap.EstimatedEffort {
		case models.EffortSmall:
			dist.Small++
		case models.EffortMedium:
			dist.Medium++
		case models.EffortLarge:
			dist.Large++
		}
	}
	return dist
}

// rankVendorsByCoverage ranks vendors by how many of the bucket's gaps their
// category set covers. Ties are broken by vendor id so the ranking is
// reproducible across runs and platforms.
func rankVendorsByCoverage(vendors []models.Vendor, gaps []models.Gap, limit int) []dtos.TimelineVendor {
	ranked := utils.Map(vendors, func(vendor models.Vendor) dtos.TimelineVendor {
		count := utils.CountBy(gaps, func(gap models.Gap) bool {
			return vendor.CoversCategory(gap.Category)
		})
		return dtos.TimelineVendor{
			VendorID:      vendor.ID,
			VendorName:    vendor.Name,
			CoverageCount: count,
		}
	})

	ranked = utils.Filter(ranked, func(v dtos.TimelineVendor) bool {
		return v.CoverageCount > 0
	})

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CoverageCount != ranked[j].CoverageCount {
			return ranked[i].CoverageCount > ranked[j].CoverageCount
		}
		return strings.Compare(ranked[i].VendorID.String(), ranked[j].VendorID.String()) < 0
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
