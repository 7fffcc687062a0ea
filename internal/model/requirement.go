package model

import (
	"encoding/json"
	"errors"
)

// RequirementKind discriminates the two requirement shapes.
type RequirementKind string

const (
	// RequirementCore is satisfied by taking one course from each group.
	RequirementCore RequirementKind = "core"
	// RequirementElective is satisfied by taking Number courses from a flat pool.
	RequirementElective RequirementKind = "elective"
)

// ErrMalformedRequirement is returned when a requirement document carries
// neither a core nor an elective shape.
var ErrMalformedRequirement = errors.New("requirement document has neither course groups nor a course pool")

// Requirement is one decoded degree requirement. Exactly one of the two
// shapes is populated, selected by Kind: Groups for core requirements,
// Courses+Number for elective requirements.
type Requirement struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Kind RequirementKind `json:"kind"`
	// Tag is the label used for major-requirement filter matching. Optional.
	Tag string `json:"tag,omitempty"`
	// Groups holds interchangeable course ID sets; each group counts as one
	// unit. Core shape only.
	Groups [][]string `json:"groups,omitempty"`
	// Courses is the flat pool and Number the target count. Elective shape only.
	Courses []string `json:"courses,omitempty"`
	Number  int      `json:"number,omitempty"`
}

// requirementDoc mirrors the stored document, which marks its shape by
// field presence rather than an explicit discriminator.
type requirementDoc struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Tag     string     `json:"tag"`
	Groups  [][]string `json:"groups"`
	Courses []string   `json:"courses"`
	Number  int        `json:"number"`
}

// DecodeRequirement parses a stored requirement document into the tagged
// union form. The shape is probed exactly once, here; consumers switch on
// Kind. A document carrying both shapes decodes as core (groups win), one
// carrying neither returns ErrMalformedRequirement.
func DecodeRequirement(data []byte) (Requirement, error) {
	var doc requirementDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Requirement{}, err
	}

	req := Requirement{
		ID:   doc.ID,
		Name: doc.Name,
		Tag:  doc.Tag,
	}

	switch {
	case len(doc.Groups) > 0:
		req.Kind = RequirementCore
		req.Groups = doc.Groups
	case len(doc.Courses) > 0:
		req.Kind = RequirementElective
		req.Courses = doc.Courses
		req.Number = doc.Number
	default:
		return Requirement{}, ErrMalformedRequirement
	}

	return req, nil
}
