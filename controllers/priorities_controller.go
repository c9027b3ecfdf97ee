package controllers

import (
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type prioritiesRequest struct {
	TopRiskPriority      string   `json:"topRiskPriority" validate:"required"`
	DesiredFeatures      []string `json:"desiredFeatures" validate:"max=20"`
	DeploymentPreference *string  `json:"deploymentPreference" validate:"omitempty,oneof=cloud on_prem hybrid"`
	Urgency              *string  `json:"urgency" validate:"omitempty,oneof=urgent soon planned"`
	OrganizationSize     *string  `json:"organizationSize" validate:"omitempty,oneof=micro small medium large enterprise"`
	Geography            *string  `json:"geography"`
	BudgetBand           *string  `json:"budgetBand" validate:"omitempty,oneof=under_10k 10k_50k 50k_200k over_200k"`
}

type PrioritiesController struct {
	prioritiesRepository shared.PrioritiesRepository
}

func NewPrioritiesController(prioritiesRepository shared.PrioritiesRepository) *PrioritiesController {
	return &PrioritiesController{
		prioritiesRepository: prioritiesRepository,
	}
}

// Upsert creates or replaces the assessment's priorities questionnaire. The
// vendor-match cache does not need explicit invalidation here - its key is
// derived from the questionnaire's content hash and rolls over on change.
func (c *PrioritiesController) Upsert(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	var req prioritiesRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "invalid payload").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	priorities := models.AssessmentPriorities{
		AssessmentID:    assessment.ID,
		TopRiskPriority: models.RiskCategory(req.TopRiskPriority),
		DesiredFeatures: datatypes.NewJSONSlice(req.DesiredFeatures),
		Geography:       req.Geography,
	}
	if req.DeploymentPreference != nil {
		priorities.DeploymentPreference = shared.Ptr(models.DeploymentMode(*req.DeploymentPreference))
	}
	if req.Urgency != nil {
		priorities.Urgency = shared.Ptr(models.UrgencyPreference(*req.Urgency))
	}
	if req.OrganizationSize != nil {
		priorities.OrganizationSize = shared.Ptr(models.SizeSegment(*req.OrganizationSize))
	}
	if req.BudgetBand != nil {
		priorities.BudgetBand = shared.Ptr(models.BudgetBand(*req.BudgetBand))
	}

	if err := c.prioritiesRepository.Upsert(nil, &priorities); err != nil {
		return echo.NewHTTPError(500, "could not save priorities").WithInternal(err)
	}

	return ctx.JSON(200, priorities)
}
