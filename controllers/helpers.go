package controllers

import (
	"strconv"

	"github.com/l3montree-dev/gapguard/shared"
)

// intQueryParam parses an optional integer query parameter, falling back to
// def when absent or malformed.
func intQueryParam(ctx shared.Context, name string, def int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
