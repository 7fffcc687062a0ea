package planner

import "github.com/campuspath/campuspath-backend/internal/model"

// Completion reports how far one requirement has progressed against a
// taken-course set.
type Completion struct {
	RequirementID string `json:"requirement_id"`
	Name          string `json:"name"`
	// Applicable is false for elective requirements with a zero target; the
	// caller suppresses the completion badge rather than showing
	// "trivially complete".
	Applicable       bool     `json:"applicable"`
	Completed        int      `json:"completed"`
	CompletedCourses []string `json:"completed_courses"`
	Remaining        int      `json:"remaining"`
	Done             bool     `json:"done"`
}

// TrackCompletion computes completion for a single requirement in
// isolation. For elective requirements the reported count is the raw size
// of the pool∩taken intersection, uncapped.
func TrackCompletion(req model.Requirement, taken map[string]struct{}) Completion {
	return track(req, taken, map[string]struct{}{})
}

// TrackAll computes completion for a batch of requirements. Core
// requirements evaluate each group independently against the full taken
// set, so a course may satisfy groups in several requirements. Elective
// requirements share a used-course set: a taken course is assigned to the
// first elective requirement that can use it, iterating requirements in
// the given order and each pool in stored order. The order dependence is
// intentional and part of the contract.
func TrackAll(reqs []model.Requirement, taken map[string]struct{}) []Completion {
	used := map[string]struct{}{}
	out := make([]Completion, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, track(req, taken, used))
	}
	return out
}

// BelongsTo reports whether a course is a member of the requirement:
// present in any core group or in the elective pool. This is membership,
// not completion; the filter engine uses it for requirement-tag matching.
func BelongsTo(req model.Requirement, courseID string) bool {
	switch req.Kind {
	case model.RequirementCore:
		for _, group := range req.Groups {
			for _, id := range group {
				if id == courseID {
					return true
				}
			}
		}
	case model.RequirementElective:
		for _, id := range req.Courses {
			if id == courseID {
				return true
			}
		}
	}
	return false
}

func track(req model.Requirement, taken, used map[string]struct{}) Completion {
	c := Completion{
		RequirementID:    req.ID,
		Name:             req.Name,
		Applicable:       true,
		CompletedCourses: []string{},
	}

	switch req.Kind {
	case model.RequirementCore:
		for _, group := range req.Groups {
			for _, id := range group {
				if _, ok := taken[id]; ok {
					c.Completed++
					c.CompletedCourses = append(c.CompletedCourses, id)
					break
				}
			}
		}
		c.Remaining = len(req.Groups) - c.Completed
		c.Done = c.Remaining == 0

	case model.RequirementElective:
		if req.Number == 0 {
			c.Applicable = false
			return c
		}
		for _, id := range req.Courses {
			if _, takenOK := taken[id]; !takenOK {
				continue
			}
			if _, usedOK := used[id]; usedOK {
				continue
			}
			used[id] = struct{}{}
			c.Completed++
			c.CompletedCourses = append(c.CompletedCourses, id)
		}
		c.Remaining = req.Number - c.Completed
		if c.Remaining < 0 {
			c.Remaining = 0
		}
		c.Done = c.Remaining == 0
	}

	return c
}
