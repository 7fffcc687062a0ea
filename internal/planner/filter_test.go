package planner

import (
	"reflect"
	"testing"

	"github.com/campuspath/campuspath-backend/internal/model"
)

func score(v float64) *float64 { return &v }

func testCandidates() []model.Course {
	return []model.Course{
		{
			ID: "CS2110", Subject: "CS", Number: "2110",
			Semesters:     []string{"FA26", "SP27"},
			Distributions: []string{"MQR-AS"},
			Score:         score(4.2),
			Prereqs:       model.PrereqSpec{{"CS1110", "CS1112"}},
		},
		{
			ID: "CS3110", Subject: "CS", Number: "3110",
			Semesters: []string{"FA26"},
			Score:     score(4.5),
			Prereqs:   model.PrereqSpec{{"CS2110", "CS2112"}},
		},
		{
			ID: "CS4820", Subject: "CS", Number: "4820",
			Semesters: []string{"SP27"},
			Score:     score(3.1),
			Prereqs:   model.PrereqSpec{{"CS3110"}, {"CS2800"}},
		},
		{
			ID: "CS1110", Subject: "CS", Number: "1110",
			Semesters:     []string{"FA26", "SP27"},
			Distributions: []string{"MQR-AS", "SDS-AS"},
			Score:         score(1.5),
		},
	}
}

func TestFilterCoursesTakenBucket(t *testing.T) {
	in := FilterInput{TakenSet: takenSet("CS1110")}

	got := FilterCourses(testCandidates(), nil, in)
	if len(got.Completed) != 1 || got.Completed[0].ID != "CS1110" {
		t.Fatalf("Completed = %+v, want exactly CS1110", got.Completed)
	}
	for _, sc := range got.Ranked {
		if sc.Course.ID == "CS1110" {
			t.Error("taken course leaked into the ranked list")
		}
	}

	// Taken courses stay out even when filters would otherwise boost them.
	criteria := model.FilterSet{
		model.FilterCategoryDistributions: {"MQR-AS": {Prefer: true}},
	}
	got = FilterCourses(testCandidates(), criteria, in)
	for _, sc := range got.Ranked {
		if sc.Course.ID == "CS1110" {
			t.Error("preference boost must not resurrect a taken course")
		}
	}
}

func TestFilterCoursesLevelOnly(t *testing.T) {
	criteria := model.FilterSet{
		model.FilterCategoryLevel: {
			"2000": {Only: true},
			"3000": {Only: true},
		},
	}

	got := FilterCourses(testCandidates(), criteria, FilterInput{TakenSet: takenSet()})
	ids := rankedIDs(got)
	want := map[string]bool{"CS2110": true, "CS3110": true}
	if len(ids) != 2 || !want[ids[0]] || !want[ids[1]] {
		t.Errorf("level-only survivors = %v, want CS2110 and CS3110", ids)
	}
}

func TestFilterCoursesScoreThresholds(t *testing.T) {
	criteria := model.FilterSet{
		model.FilterCategoryOverallScore: {
			model.FilterOptionHighScore: {Only: true},
		},
	}

	got := FilterCourses(testCandidates(), criteria, FilterInput{TakenSet: takenSet()})
	for _, sc := range got.Ranked {
		if sc.Course.Score == nil || *sc.Course.Score < ScoreHighThreshold {
			t.Errorf("course %s (score %v) should have been excluded", sc.Course.ID, sc.Course.Score)
		}
	}

	// Prefer mode: high scores add their own value, low scores subtract
	// proportionally, mid-range scores are untouched.
	criteria = model.FilterSet{
		model.FilterCategoryOverallScore: {
			model.FilterOptionHighScore: {Prefer: true},
		},
	}
	got = FilterCourses(testCandidates(), criteria, FilterInput{TakenSet: takenSet()})

	byID := map[string]ScoredCourse{}
	for _, sc := range got.Ranked {
		byID[sc.Course.ID] = sc
	}
	if byID["CS3110"].Score != 4.5 {
		t.Errorf("CS3110 score = %v, want 4.5", byID["CS3110"].Score)
	}
	if byID["CS4820"].Score != 0 {
		t.Errorf("CS4820 (mid-range) score = %v, want 0", byID["CS4820"].Score)
	}
	if byID["CS1110"].Score != -(ScoreLowThreshold - 1.5) {
		t.Errorf("CS1110 score = %v, want %v", byID["CS1110"].Score, -(ScoreLowThreshold - 1.5))
	}
}

func TestFilterCoursesEligibility(t *testing.T) {
	taken := takenSet("CS1110")
	criteria := model.FilterSet{
		model.FilterCategoryEligibility: {
			model.FilterOptionEligible: {Only: true},
		},
	}

	got := FilterCourses(testCandidates(), criteria, FilterInput{TakenSet: taken})
	ids := rankedIDs(got)
	if !reflect.DeepEqual(ids, []string{"CS2110"}) {
		t.Errorf("eligible-only survivors = %v, want [CS2110]", ids)
	}

	criteria = model.FilterSet{
		model.FilterCategoryEligibility: {
			model.FilterOptionEligible: {Prefer: true},
		},
	}
	got = FilterCourses(testCandidates(), criteria, FilterInput{TakenSet: taken})
	for _, sc := range got.Ranked {
		if sc.Course.ID == "CS2110" && sc.Score != eligiblePreferBonus {
			t.Errorf("CS2110 score = %v, want %v", sc.Score, eligiblePreferBonus)
		}
		if sc.Course.ID == "CS3110" && sc.Score != 0 {
			t.Errorf("ineligible CS3110 score = %v, want 0", sc.Score)
		}
	}
}

func TestFilterCoursesDistributions(t *testing.T) {
	criteria := model.FilterSet{
		model.FilterCategoryDistributions: {"MQR-AS": {Only: true, Prefer: true}},
	}

	got := FilterCourses(testCandidates(), criteria, FilterInput{TakenSet: takenSet()})
	ids := rankedIDs(got)
	for _, id := range ids {
		if id != "CS2110" && id != "CS1110" {
			t.Errorf("course %s lacks MQR-AS, should be excluded", id)
		}
	}
	for _, sc := range got.Ranked {
		if !containsTag(sc.Tags, "MQR-AS") {
			t.Errorf("course %s missing matched tag, tags = %v", sc.Course.ID, sc.Tags)
		}
	}
}

func TestFilterCoursesRequirementMatch(t *testing.T) {
	req := model.Requirement{
		ID:      "cs-electives",
		Tag:     "electives",
		Kind:    model.RequirementElective,
		Courses: []string{"CS4820", "CS3110"},
		Number:  2,
	}
	in := FilterInput{
		TakenSet:     takenSet(),
		Requirements: []model.Requirement{req},
	}
	criteria := model.FilterSet{
		model.FilterCategoryRequirements: {"electives": {Prefer: true}},
	}

	got := FilterCourses(testCandidates(), criteria, in)
	for _, sc := range got.Ranked {
		member := sc.Course.ID == "CS4820" || sc.Course.ID == "CS3110"
		if member {
			if sc.Score != requirementPreferBonus {
				t.Errorf("%s score = %v, want %v", sc.Course.ID, sc.Score, requirementPreferBonus)
			}
			if !containsTag(sc.Tags, "electives") {
				t.Errorf("%s missing requirement tag, tags = %v", sc.Course.ID, sc.Tags)
			}
		} else if sc.Score != 0 {
			t.Errorf("non-member %s score = %v, want 0", sc.Course.ID, sc.Score)
		}
	}

	// Membership is tested against the pool, not remaining need: a
	// requirement already completed still matches.
	in.TakenSet = takenSet("CS2800")
	criteria = model.FilterSet{
		model.FilterCategoryRequirements: {"electives": {Only: true}},
	}
	got = FilterCourses(testCandidates(), criteria, in)
	ids := rankedIDs(got)
	if len(ids) != 2 {
		t.Errorf("requirement-only survivors = %v, want the two pool members", ids)
	}
}

func TestFilterCoursesAvailabilityPenalty(t *testing.T) {
	in := FilterInput{TakenSet: takenSet(), TermCode: "FA26"}

	got := FilterCourses(testCandidates(), nil, in)
	if len(got.Ranked) != 4 {
		t.Fatalf("availability must never exclude, got %d survivors", len(got.Ranked))
	}

	// CS4820 is SP27-only: penalized to the bottom.
	last := got.Ranked[len(got.Ranked)-1]
	if last.Course.ID != "CS4820" || last.Available || last.Score != unavailablePenalty {
		t.Errorf("unavailable course should rank last with the penalty, got %+v", last)
	}

	// Unknown term code skips the availability check.
	got = FilterCourses(testCandidates(), nil, FilterInput{TakenSet: takenSet()})
	for _, sc := range got.Ranked {
		if !sc.Available || sc.Score != 0 {
			t.Errorf("no term code: %s should be untouched, got %+v", sc.Course.ID, sc)
		}
	}
}

// Identical inputs must produce identical output, and zero-score ties keep
// candidate order.
func TestFilterCoursesStable(t *testing.T) {
	criteria := model.FilterSet{
		model.FilterCategoryDistributions: {"SDS-AS": {Prefer: true}},
	}
	in := FilterInput{TakenSet: takenSet()}

	first := FilterCourses(testCandidates(), criteria, in)
	for i := 0; i < 5; i++ {
		again := FilterCourses(testCandidates(), criteria, in)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("pass %d differed from the first pass", i)
		}
	}

	// The three zero-score courses keep their candidate order behind the
	// boosted one.
	want := []string{"CS1110", "CS2110", "CS3110", "CS4820"}
	if got := rankedIDs(first); !reflect.DeepEqual(got, want) {
		t.Errorf("ranked order = %v, want %v", got, want)
	}
}

func TestPaginate(t *testing.T) {
	ranked := make([]ScoredCourse, 14)
	for i := range ranked {
		ranked[i].Course.ID = string(rune('A' + i))
	}

	pages := Paginate(ranked, 0)
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
	if len(pages[0]) != DefaultPageSize || len(pages[2]) != 2 {
		t.Errorf("page sizes = %d/%d/%d, want 6/6/2", len(pages[0]), len(pages[1]), len(pages[2]))
	}
	if pages[1][0].Course.ID != ranked[6].Course.ID {
		t.Error("page boundaries must preserve ranked order")
	}

	if pages := Paginate(nil, 6); len(pages) != 0 {
		t.Errorf("empty input yields no pages, got %d", len(pages))
	}
}

func TestRequirementTag(t *testing.T) {
	withTag := model.Requirement{ID: "req-1", Tag: "core"}
	if got := RequirementTag(withTag); got != "core" {
		t.Errorf("RequirementTag = %q, want tag", got)
	}
	noTag := model.Requirement{ID: "req-2"}
	if got := RequirementTag(noTag); got != "req-2" {
		t.Errorf("RequirementTag = %q, want ID fallback", got)
	}
}

func rankedIDs(r FilterResult) []string {
	ids := make([]string, 0, len(r.Ranked))
	for _, sc := range r.Ranked {
		ids = append(ids, sc.Course.ID)
	}
	return ids
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
