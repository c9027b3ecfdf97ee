package shared

import "errors"

// typed batch-level failures of the matching engine. Per-vendor scoring never
// fails - contested dimensions degrade to neutral values instead.
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrPrioritiesNotFound = errors.New("assessment priorities not found")
)
