package planner

import (
	"sort"
	"strconv"

	"github.com/campuspath/campuspath-backend/internal/model"
)

// Scoring constants. "only" options exclude; "prefer" options add these.
const (
	// ScoreHighThreshold gates the high-overall-score filter.
	ScoreHighThreshold = 3.5
	// ScoreLowThreshold is where the proportional low-score penalty begins.
	ScoreLowThreshold = 2.0

	levelPreferBonus        = 1.0
	eligiblePreferBonus     = 1.5
	distributionPreferBonus = 1.0
	// Requirement matches outrank distribution matches.
	requirementPreferBonus = 2.0
	// scoreDeficitWeight scales the penalty for courses under the low threshold.
	scoreDeficitWeight = 1.0
	// unavailablePenalty pushes courses not offered in the requested term to
	// the bottom without excluding them.
	unavailablePenalty = -10.0
)

// DefaultPageSize is the display chunk size for ranked output.
const DefaultPageSize = 6

// FilterInput carries everything the pipeline needs besides the candidates
// and criteria. All lookups are explicit parameters; the engine reads no
// ambient state.
type FilterInput struct {
	// TakenSet is the flattened taken mapping of the user's schedule.
	TakenSet map[string]struct{}
	// Requirements are the user's applicable requirements, used for
	// majorRequirements filter matching.
	Requirements []model.Requirement
	// TermCode is the availability code of the planning semester ("" skips
	// the availability check).
	TermCode string
}

// ScoredCourse is one survivor of the pipeline.
type ScoredCourse struct {
	Course    model.Course `json:"course"`
	Score     float64      `json:"score"`
	Tags      []string     `json:"tags"`
	Available bool         `json:"available"`
}

// FilterResult separates scorable survivors from courses the user already
// took.
type FilterResult struct {
	Ranked []ScoredCourse `json:"ranked"`
	// Completed holds candidates found in the taken set; they never enter
	// the scorable list regardless of filter settings.
	Completed []model.Course `json:"completed"`
}

// FilterCourses runs the multi-criteria filter/scoring pipeline over the
// candidates. The pass is stateless and idempotent: identical inputs yield
// identical, order-stable output, ties broken by candidate order.
func FilterCourses(candidates []model.Course, criteria model.FilterSet, in FilterInput) FilterResult {
	result := FilterResult{
		Ranked:    []ScoredCourse{},
		Completed: []model.Course{},
	}

	for _, course := range candidates {
		if _, took := in.TakenSet[course.ID]; took {
			result.Completed = append(result.Completed, course)
			continue
		}

		scored, keep := evaluate(course, criteria, in)
		if keep {
			result.Ranked = append(result.Ranked, scored)
		}
	}

	sort.SliceStable(result.Ranked, func(i, j int) bool {
		return result.Ranked[i].Score > result.Ranked[j].Score
	})

	return result
}

// RequirementTag is the label a requirement matches filter options under:
// its explicit tag when present, its ID otherwise.
func RequirementTag(req model.Requirement) string {
	if req.Tag != "" {
		return req.Tag
	}
	return req.ID
}

// Paginate chunks ranked output into fixed-size pages for display. Page
// membership and order are exactly the ranked order; size <= 0 falls back
// to DefaultPageSize.
func Paginate(ranked []ScoredCourse, size int) [][]ScoredCourse {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := make([][]ScoredCourse, 0, (len(ranked)+size-1)/size)
	for start := 0; start < len(ranked); start += size {
		end := start + size
		if end > len(ranked) {
			end = len(ranked)
		}
		pages = append(pages, ranked[start:end])
	}
	return pages
}

// evaluate runs the per-course category checks in specification order,
// short-circuiting on any "only" violation.
func evaluate(course model.Course, criteria model.FilterSet, in FilterInput) (ScoredCourse, bool) {
	out := ScoredCourse{Course: course, Tags: []string{}, Available: true}
	seenTags := map[string]struct{}{}
	addTag := func(tag string) {
		if _, ok := seenTags[tag]; ok {
			return
		}
		seenTags[tag] = struct{}{}
		out.Tags = append(out.Tags, tag)
	}

	// 1. Semester availability: penalizing, never excluding.
	if in.TermCode != "" && !course.OfferedIn(in.TermCode) {
		out.Available = false
		out.Score += unavailablePenalty
	}

	// 2. Level.
	levelOpts := criteria.Category(model.FilterCategoryLevel)
	levelKey := strconv.Itoa(course.Level())
	if criteria.AnyOnly(model.FilterCategoryLevel) && !levelOpts[levelKey].Only {
		return out, false
	}
	if levelOpts[levelKey].Prefer {
		out.Score += levelPreferBonus
	}

	// 3. Overall score threshold.
	scoreState := criteria.Category(model.FilterCategoryOverallScore)[model.FilterOptionHighScore]
	if scoreState.Only && (course.Score == nil || *course.Score < ScoreHighThreshold) {
		return out, false
	}
	if scoreState.Prefer && course.Score != nil {
		switch {
		case *course.Score >= ScoreHighThreshold:
			out.Score += *course.Score
		case *course.Score < ScoreLowThreshold:
			out.Score -= (ScoreLowThreshold - *course.Score) * scoreDeficitWeight
		}
	}

	// 4. Enrollment eligibility.
	eligState := criteria.Category(model.FilterCategoryEligibility)[model.FilterOptionEligible]
	if eligState.Only || eligState.Prefer {
		elig := CheckEligibility(course.Prereqs, in.TakenSet)
		if eligState.Only && !elig.Eligible {
			return out, false
		}
		if eligState.Prefer && elig.Eligible {
			out.Score += eligiblePreferBonus
		}
	}

	// 5. Distribution tags.
	distOpts := criteria.Category(model.FilterCategoryDistributions)
	if criteria.AnyOnly(model.FilterCategoryDistributions) {
		matched := false
		for _, tag := range course.Distributions {
			if distOpts[tag].Only {
				matched = true
				addTag(tag)
			}
		}
		if !matched {
			return out, false
		}
	}
	for _, tag := range course.Distributions {
		if distOpts[tag].Prefer {
			out.Score += distributionPreferBonus
			addTag(tag)
		}
	}

	// 6. Major-requirement tags. Membership test, not completion.
	reqOpts := criteria.Category(model.FilterCategoryRequirements)
	if criteria.AnyOnly(model.FilterCategoryRequirements) {
		matched := false
		for _, req := range in.Requirements {
			tag := RequirementTag(req)
			if reqOpts[tag].Only && BelongsTo(req, course.ID) {
				matched = true
				addTag(tag)
			}
		}
		if !matched {
			return out, false
		}
	}
	for _, req := range in.Requirements {
		tag := RequirementTag(req)
		if reqOpts[tag].Prefer && BelongsTo(req, course.ID) {
			out.Score += requirementPreferBonus
			addTag(tag)
		}
	}

	return out, true
}
