package controllers

import (
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type StrategyController struct {
	strategyService shared.StrategyService
}

func NewStrategyController(strategyService shared.StrategyService) *StrategyController {
	return &StrategyController{
		strategyService: strategyService,
	}
}

func (c *StrategyController) Matrix(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	matrix, err := c.strategyService.GenerateStrategyMatrix(ctx.Request().Context(), assessment.ID)
	if err != nil {
		if errors.Is(err, shared.ErrAssessmentNotFound) {
			return echo.NewHTTPError(404, "could not find assessment")
		}
		return echo.NewHTTPError(500, "could not generate strategy matrix").WithInternal(err)
	}

	return ctx.JSON(200, matrix)
}
