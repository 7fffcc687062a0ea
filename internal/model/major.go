package model

// CollegeRequirements associates one college with the requirement IDs that
// apply to students of this major enrolled in that college.
type CollegeRequirements struct {
	College      string   `json:"college"`
	Requirements []string `json:"requirements"`
}

// Concentration is an optional specialization within a major with its own
// requirement list.
type Concentration struct {
	Name         string   `json:"name"`
	Requirements []string `json:"requirements"`
}

// Major represents one major or minor document.
type Major struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// BasicRequirements maps colleges to requirement ID lists, in document order.
	BasicRequirements []CollegeRequirements `json:"basic_requirements"`
	Concentrations    []Concentration       `json:"concentrations,omitempty"`
	// InitialCourses are recommended starting courses for students with an
	// empty schedule.
	InitialCourses []string `json:"initial_courses,omitempty"`
}
