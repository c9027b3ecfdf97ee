package evidence

import (
	"github.com/l3montree-dev/gapguard/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewEvidenceService, fx.As(new(shared.EvidenceService)))),
)
