// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package strategy builds the timeline-phased remediation roadmap: gaps are
// partitioned into three urgency buckets, each bucket aggregated into effort
// and cost figures and decorated with the vendors best covering it.
package strategy

import (
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
)

const (
	TimelineImmediate = "0-6 months"
	TimelineNearTerm  = "6-18 months"
	TimelineStrategic = "18+ months"

	// priorityScore thresholds for the timeline buckets
	immediateMinScore = 8
	nearTermMinScore  = 4
)

type partition struct {
	immediate []models.Gap
	nearTerm  []models.Gap
	strategic []models.Gap
	untriaged int
}

// partitionGaps assigns every gap with a priority score to exactly one
// bucket. Gaps without a score are not triaged yet and belong to no bucket -
// they are only counted.
func partitionGaps(gaps []models.Gap) partition {
	p := partition{
		immediate: make([]models.Gap, 0, len(gaps)),
		nearTerm:  make([]models.Gap, 0, len(gaps)),
		strategic: make([]models.Gap, 0, len(gaps)),
	}

	for _, gap := range gaps {
		if gap.PriorityScore == nil {
			p.untriaged++
			continue
		}

		switch score := *gap.PriorityScore; {
		case score >= immediateMinScore:
			p.immediate = append(p.immediate, gap)
		case score >= nearTermMinScore:
			p.nearTerm = append(p.nearTerm, gap)
		default:
			p.strategic = append(p.strategic, gap)
		}
	}

	return p
}

// distinctCategories returns the risk categories present in a bucket's gaps.
func distinctCategories(gaps []models.Gap) []models.RiskCategory {
	categories := utils.Map(gaps, func(g models.Gap) models.RiskCategory {
		return g.Category
	})
	return utils.UniqBy(categories, func(c models.RiskCategory) models.RiskCategory { return c })
}
