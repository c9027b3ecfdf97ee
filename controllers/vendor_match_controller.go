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

package controllers

import (
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/l3montree-dev/gapguard/utils"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type VendorMatchController struct {
	matchingService shared.MatchingService
}

func NewVendorMatchController(matchingService shared.MatchingService) *VendorMatchController {
	return &VendorMatchController{
		matchingService: matchingService,
	}
}

// List returns the ranked vendor matches for an assessment. Threshold and
// limit are presentation concerns and applied here, on top of the full
// ranking the engine produces.
func (c *VendorMatchController) List(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	matches, err := c.matchingService.MatchVendorsToAssessment(ctx.Request().Context(), assessment.ID)
	if err != nil {
		if errors.Is(err, shared.ErrPrioritiesNotFound) {
			return echo.NewHTTPError(400, map[string]string{
				"code":    "PRIORITIES_REQUIRED",
				"message": "the priorities questionnaire has to be submitted before enhanced matching",
			})
		}
		if errors.Is(err, shared.ErrAssessmentNotFound) {
			return echo.NewHTTPError(404, "could not find assessment")
		}
		return echo.NewHTTPError(500, "could not match vendors").WithInternal(err)
	}

	threshold := intQueryParam(ctx, "threshold", 0)
	if threshold > 0 {
		matches = utils.Filter(matches, func(m dtos.VendorMatchScore) bool {
			return m.TotalScore >= threshold
		})
	}

	limit := intQueryParam(ctx, "limit", 0)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return ctx.JSON(200, matches)
}
