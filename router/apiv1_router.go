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

package router

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/controllers"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/labstack/echo/v4"
)

type APIV1Router struct {
	*echo.Group
}

// orgMiddleware resolves the organization slug and stores the org on the
// request context. Unknown orgs are a 404 - never leak whether a slug
// exists.
func orgMiddleware(orgRepository shared.OrganizationRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			org, err := orgRepository.ReadBySlug(ctx.Param("orgSlug"))
			if err != nil {
				return echo.NewHTTPError(404, "could not find organization").WithInternal(err)
			}
			shared.SetOrg(ctx, org)
			return next(ctx)
		}
	}
}

// assessmentMiddleware resolves the assessment scoped to the current org -
// the ownership check. An assessment belonging to another org yields the
// same 404 as a missing one.
func assessmentMiddleware(assessmentRepository shared.AssessmentRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			assessmentID, err := uuid.Parse(ctx.Param("assessmentID"))
			if err != nil {
				return echo.NewHTTPError(400, "invalid assessment id")
			}

			org := shared.GetOrg(ctx)
			assessment, err := assessmentRepository.ReadByOrgID(org.ID, assessmentID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find assessment").WithInternal(err)
			}

			shared.SetAssessment(ctx, assessment)
			return next(ctx)
		}
	}
}

func NewAPIV1Router(
	e *echo.Echo,
	orgRepository shared.OrganizationRepository,
	assessmentRepository shared.AssessmentRepository,
	vendorMatchController *controllers.VendorMatchController,
	strategyController *controllers.StrategyController,
	resultsController *controllers.ResultsController,
	prioritiesController *controllers.PrioritiesController,
) APIV1Router {
	apiV1 := e.Group("/api/v1")

	org := apiV1.Group("/organizations/:orgSlug", orgMiddleware(orgRepository))
	assessment := org.Group("/assessments/:assessmentID", assessmentMiddleware(assessmentRepository))

	assessment.GET("/vendor-matches-v2", vendorMatchController.List)
	assessment.GET("/strategy-matrix", strategyController.Matrix)
	assessment.GET("/enhanced-results", resultsController.EnhancedResults)
	assessment.PUT("/priorities", prioritiesController.Upsert)

	return APIV1Router{Group: apiV1}
}
