// Package planner holds the course-planning logic: requirement resolution,
// completion tracking, enrollment eligibility, and the filter/scoring
// pipeline. Everything here is a pure function over already-fetched
// records; fetching and caching live in the service layer.
package planner

import "github.com/campuspath/campuspath-backend/internal/model"

// ResolveCollegeRequirements returns the requirement IDs that apply to the
// major for the given college, in document order. The boolean is false when
// the major has no entry for that college; callers surface that as a
// distinct not-found signal, never as an error.
func ResolveCollegeRequirements(major model.Major, collegeID string) ([]string, bool) {
	for _, br := range major.BasicRequirements {
		if br.College == collegeID {
			return br.Requirements, true
		}
	}
	return nil, false
}

// ResolveConcentrationRequirements returns the requirement IDs of the named
// concentration, with the same not-found contract as
// ResolveCollegeRequirements.
func ResolveConcentrationRequirements(major model.Major, name string) ([]string, bool) {
	for _, con := range major.Concentrations {
		if con.Name == name {
			return con.Requirements, true
		}
	}
	return nil, false
}
