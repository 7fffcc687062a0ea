package model

// Filter category names accepted by the recommendation endpoint.
const (
	FilterCategoryLevel         = "level"
	FilterCategoryOverallScore  = "overallScore"
	FilterCategoryEligibility   = "enrollmentEligibility"
	FilterCategoryDistributions = "collegeDistributions"
	FilterCategoryRequirements  = "majorRequirements"
)

// FilterOptionHighScore is the single option of the overallScore category.
const FilterOptionHighScore = "highOverallScore"

// FilterOptionEligible is the single option of the enrollmentEligibility category.
const FilterOptionEligible = "eligible"

// OptionState is the per-option toggle pair. "only" excludes non-matching
// courses; "prefer" boosts matching ones without excluding anything.
type OptionState struct {
	Only   bool `json:"only"`
	Prefer bool `json:"prefer"`
}

// FilterSet maps category name → option key → state. Within a category,
// multiple "only" options combine with OR semantics: a course must match
// any one of them.
type FilterSet map[string]map[string]OptionState

// Category returns the option map for a category, or nil when unset.
func (f FilterSet) Category(name string) map[string]OptionState {
	if f == nil {
		return nil
	}
	return f[name]
}

// AnyOnly reports whether any option in the category has "only" set.
func (f FilterSet) AnyOnly(category string) bool {
	for _, state := range f.Category(category) {
		if state.Only {
			return true
		}
	}
	return false
}
