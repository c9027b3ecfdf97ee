package controllers

import (
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// methodology strings shown alongside the enhanced results so the scoring
// stays explainable to the end user
var methodology = []string{
	"Answer scores are discounted by evidence tier: self-declared x0.6, claimed with evidence x0.8, document-derived x1.0.",
	"Section scores average the evidence-adjusted answer scores, scaled to 0-100.",
	"The overall score weights each section by its template weight, normalized over sections with answers.",
	"Confidence is HIGH when at least 60% of answers are document-derived, MEDIUM when evidence-backed answers reach 60%.",
}

type ResultsController struct {
	evidenceService      shared.EvidenceService
	prioritiesRepository shared.PrioritiesRepository
}

func NewResultsController(evidenceService shared.EvidenceService, prioritiesRepository shared.PrioritiesRepository) *ResultsController {
	return &ResultsController{
		evidenceService:      evidenceService,
		prioritiesRepository: prioritiesRepository,
	}
}

func (c *ResultsController) EnhancedResults(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	result, err := c.evidenceService.ScoreAssessment(assessment)
	if err != nil {
		return echo.NewHTTPError(500, "could not compute evidence weighted results").WithInternal(err)
	}

	// a missing questionnaire is expected, anything else is a real failure
	hasPriorities := true
	if _, err := c.prioritiesRepository.GetByAssessmentID(assessment.ID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(500, "could not read priorities").WithInternal(err)
		}
		hasPriorities = false
	}

	return ctx.JSON(200, dtos.EnhancedResults{
		EvidenceWeightedResult: result,
		HasPriorities:          hasPriorities,
		Methodology:            methodology,
	})
}
