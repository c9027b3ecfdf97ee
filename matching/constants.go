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

// Package matching contains the vendor matching engine: the base scorer, the
// priority booster, the match reason generator and the orchestrating service.
// All scoring functions are pure - they never touch I/O.
package matching

// Every point value that determines vendor ranking lives in this table. The
// numbers are policy, not math: changing any of them reorders vendor
// recommendations, so they are pinned by tests.
const (
	// base score budget. The four component maxima sum to the theoretical
	// base maximum of 100.
	RiskAreaCoverageMax = 40
	SizeFitMax          = 20
	GeoCoverageMax      = 20
	PriceScoreMax       = 20

	// graded size alignment: exact segment > adjacent segment > mismatch
	SizeFitAdjacent = 12
	SizeFitMismatch = 4

	// geo: vendor covers the org's region (or is global) > vendor operates
	// elsewhere > unknown
	GeoPartial = 8

	// price: ordinal distance between budget band and pricing tier
	PriceAdjacent = 12
	PriceFar      = 4

	// a dimension with missing data on either side degrades to its neutral
	// value - half the component max, neither penalizing nor rewarding
	RiskAreaNeutral = RiskAreaCoverageMax / 2
	SizeFitNeutral  = SizeFitMax / 2
	GeoNeutral      = GeoCoverageMax / 2
	PriceNeutral    = PriceScoreMax / 2

	// priority boost budget. The four sub-boost caps sum to the theoretical
	// boost maximum of 40. Each sub-boost is capped independently; the
	// engine-level cap is applied in CalculateTotalScore, never here.
	TopPriorityBoostMax = 15
	FeatureBoostMax     = 10
	FeatureBoostPerTag  = 3
	DeploymentBoostMax  = 8
	SpeedBoostMax       = 7

	// TotalScoreCap is the maximum theoretical base (100) plus the maximum
	// theoretical boost (40).
	TotalScoreCap = 100 + TopPriorityBoostMax + FeatureBoostMax + DeploymentBoostMax + SpeedBoostMax
)
