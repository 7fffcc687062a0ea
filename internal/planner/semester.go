package planner

import (
	"strings"
)

// season name → two-letter term prefix used by catalog availability codes.
var seasonCodes = map[string]string{
	"fall":   "FA",
	"spring": "SP",
	"summer": "SU",
	"winter": "WI",
}

// TermCode maps a planning semester label like "Fall 2026" to the catalog
// availability code "FA26". Returns "" when the label cannot be parsed;
// the filter engine then skips the availability check instead of
// penalizing every course.
func TermCode(semesterLabel string) string {
	parts := strings.Fields(semesterLabel)
	if len(parts) != 2 {
		return ""
	}

	code, ok := seasonCodes[strings.ToLower(parts[0])]
	if !ok {
		return ""
	}

	year := parts[1]
	if len(year) != 4 {
		return ""
	}
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}

	return code + year[2:]
}
