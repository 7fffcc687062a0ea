package model

import (
	"encoding/json"
	"time"
)

// PrereqGroup is one alternative group of a prerequisite specification.
// A single-course group is a hard requirement; a multi-course group is
// satisfied when ANY member has been taken.
type PrereqGroup []string

// PrereqSpec is the full prerequisite specification of a course: every
// group must be satisfied (AND across groups, OR within a group).
type PrereqSpec []PrereqGroup

// UnmarshalJSON accepts the document form of a prereq spec, where each
// element is either a bare course ID ("CS2110") or an alternative list
// (["CS2110","CS2112"]). Anything unparseable decodes to nil, which the
// eligibility check treats as "no prerequisites" (fail-open).
func (p *PrereqSpec) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = nil
		return nil
	}

	spec := make(PrereqSpec, 0, len(raw))
	for _, el := range raw {
		var single string
		if err := json.Unmarshal(el, &single); err == nil {
			spec = append(spec, PrereqGroup{single})
			continue
		}
		var group []string
		if err := json.Unmarshal(el, &group); err == nil {
			spec = append(spec, PrereqGroup(group))
			continue
		}
		// Malformed element: discard the whole spec rather than guess.
		*p = nil
		return nil
	}
	*p = spec
	return nil
}

// Course represents one catalog course document.
type Course struct {
	ID            string     `json:"id"`      // e.g. "CS3110"
	Subject       string     `json:"subject"` // e.g. "CS"
	Number        string     `json:"number"`  // e.g. "3110"
	Title         string     `json:"title"`
	ShortTitle    string     `json:"short_title,omitempty"`
	Prereqs       PrereqSpec `json:"prereqs,omitempty"`
	Semesters     []string   `json:"semesters,omitempty"` // availability codes, e.g. "FA26"
	Distributions []string   `json:"distributions,omitempty"`
	Score         *float64   `json:"score,omitempty"`   // overall quality, 0–5
	Credits       []float64  `json:"credits,omitempty"` // allowed credit values
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
}

// Level returns the numeric level of the course, derived from the first
// digit of the course number (e.g. "3110" → 3000). Returns 0 when the
// number is missing or does not start with a digit.
func (c Course) Level() int {
	if c.Number == "" {
		return 0
	}
	d := c.Number[0]
	if d < '0' || d > '9' {
		return 0
	}
	return int(d-'0') * 1000
}

// OfferedIn reports whether the course is offered in the given term code.
func (c Course) OfferedIn(termCode string) bool {
	for _, s := range c.Semesters {
		if s == termCode {
			return true
		}
	}
	return false
}

// Subject is one browsable subject area of the catalog.
type Subject struct {
	Code string `json:"code"` // e.g. "CS"
	Name string `json:"name"` // e.g. "Computer Science"
}

// College is one college/school of the institution.
type College struct {
	ID   string `json:"id"`   // e.g. "AS"
	Name string `json:"name"` // e.g. "Arts and Sciences"
}
