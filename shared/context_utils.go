package shared

import (
	"github.com/l3montree-dev/gapguard/database/models"
)

func GetOrg(ctx Context) models.Org {
	return ctx.Get("org").(models.Org)
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("org", org)
}

func GetAssessment(ctx Context) models.Assessment {
	return ctx.Get("assessment").(models.Assessment)
}

func SetAssessment(ctx Context, assessment models.Assessment) {
	ctx.Set("assessment", assessment)
}
