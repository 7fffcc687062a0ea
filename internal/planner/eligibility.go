package planner

import (
	"strings"

	"github.com/campuspath/campuspath-backend/internal/model"
)

// Eligibility is the result of a prerequisite check.
type Eligibility struct {
	Eligible bool `json:"eligible"`
	// Missing lists unsatisfied groups, multi-course groups rendered as
	// "A or B or C".
	Missing []string `json:"missing_prereqs"`
}

// CheckEligibility decides whether a user with the given taken set may
// enroll in a course with the given prerequisite specification. Each group
// is satisfied when any member is taken; the spec is satisfied when every
// group is. A nil/empty spec, including one that failed to parse, is
// always eligible: the catalog data is too noisy to fail closed on.
//
// Only the course's own direct spec is evaluated; prerequisite chains are
// not walked.
func CheckEligibility(spec model.PrereqSpec, taken map[string]struct{}) Eligibility {
	result := Eligibility{Eligible: true, Missing: []string{}}

	for _, group := range spec {
		if len(group) == 0 {
			continue
		}
		satisfied := false
		for _, id := range group {
			if _, ok := taken[id]; ok {
				satisfied = true
				break
			}
		}
		if !satisfied {
			result.Eligible = false
			result.Missing = append(result.Missing, strings.Join(group, " or "))
		}
	}

	return result
}
