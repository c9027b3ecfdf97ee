package controllers

import (
	"go.uber.org/fx"
)

// Module provides all controller constructors
var Module = fx.Options(
	fx.Provide(NewVendorMatchController),
	fx.Provide(NewStrategyController),
	fx.Provide(NewResultsController),
	fx.Provide(NewPrioritiesController),
)
