package matching

import (
	"github.com/l3montree-dev/gapguard/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewMatchingService, fx.As(new(shared.MatchingService)))),
)
