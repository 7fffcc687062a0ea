package planner

import (
	"reflect"
	"testing"

	"github.com/campuspath/campuspath-backend/internal/model"
)

func TestTrackCompletionCore(t *testing.T) {
	req := model.Requirement{
		ID:   "cs-core",
		Name: "CS Core",
		Kind: model.RequirementCore,
		Groups: [][]string{
			{"CS1110", "CS1112"},
			{"CS2110", "CS2112"},
			{"CS3110"},
		},
	}

	tests := []struct {
		name          string
		taken         map[string]struct{}
		wantCompleted int
		wantRemaining int
		wantDone      bool
		wantCourses   []string
	}{
		{
			name:          "nothing taken",
			taken:         takenSet(),
			wantCompleted: 0,
			wantRemaining: 3,
			wantCourses:   []string{},
		},
		{
			name:          "one group via alternative",
			taken:         takenSet("CS1112"),
			wantCompleted: 1,
			wantRemaining: 2,
			wantCourses:   []string{"CS1112"},
		},
		{
			name:          "both alternatives of a group count once",
			taken:         takenSet("CS2110", "CS2112"),
			wantCompleted: 1,
			wantRemaining: 2,
			wantCourses:   []string{"CS2110"},
		},
		{
			name:          "all groups satisfied",
			taken:         takenSet("CS1110", "CS2112", "CS3110"),
			wantCompleted: 3,
			wantRemaining: 0,
			wantDone:      true,
			wantCourses:   []string{"CS1110", "CS2112", "CS3110"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackCompletion(req, tt.taken)
			if !got.Applicable {
				t.Error("core requirement must always be applicable")
			}
			if got.Completed != tt.wantCompleted {
				t.Errorf("Completed = %d, want %d", got.Completed, tt.wantCompleted)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %d, want %d", got.Remaining, tt.wantRemaining)
			}
			if got.Done != tt.wantDone {
				t.Errorf("Done = %v, want %v", got.Done, tt.wantDone)
			}
			if !reflect.DeepEqual(got.CompletedCourses, tt.wantCourses) {
				t.Errorf("CompletedCourses = %v, want %v", got.CompletedCourses, tt.wantCourses)
			}
		})
	}
}

func TestTrackCompletionElective(t *testing.T) {
	req := model.Requirement{
		ID:      "cs-electives",
		Name:    "CS Electives",
		Kind:    model.RequirementElective,
		Courses: []string{"CS4410", "CS4780", "CS4820"},
		Number:  2,
	}

	got := TrackCompletion(req, takenSet("CS4780"))
	if got.Completed != 1 || got.Remaining != 1 || got.Done {
		t.Errorf("partial elective: got %+v", got)
	}

	got = TrackCompletion(req, takenSet("CS4410", "CS4780", "CS4820"))
	if got.Completed != 3 {
		t.Errorf("isolated count is uncapped, Completed = %d, want 3", got.Completed)
	}
	if got.Remaining != 0 || !got.Done {
		t.Errorf("over-complete elective: got %+v", got)
	}
}

// An elective with a zero target is marked not applicable so it never
// shows as trivially complete.
func TestTrackCompletionZeroTarget(t *testing.T) {
	req := model.Requirement{
		ID:      "placeholder",
		Kind:    model.RequirementElective,
		Courses: []string{"CS1110"},
		Number:  0,
	}

	got := TrackCompletion(req, takenSet("CS1110"))
	if got.Applicable {
		t.Error("zero-target elective must not be applicable")
	}
	if got.Completed != 0 || got.Done {
		t.Errorf("zero-target elective must not report progress, got %+v", got)
	}
}

func TestTrackAllSharedElectivePool(t *testing.T) {
	first := model.Requirement{
		ID:      "electives-a",
		Kind:    model.RequirementElective,
		Courses: []string{"CS4780", "CS4820"},
		Number:  1,
	}
	second := model.Requirement{
		ID:      "electives-b",
		Kind:    model.RequirementElective,
		Courses: []string{"CS4780", "CS4410"},
		Number:  1,
	}
	taken := takenSet("CS4780")

	// CS4780 goes to whichever requirement comes first; the later one
	// cannot reuse it.
	out := TrackAll([]model.Requirement{first, second}, taken)
	if !out[0].Done || out[0].Completed != 1 {
		t.Errorf("first requirement should consume CS4780, got %+v", out[0])
	}
	if out[1].Done || out[1].Completed != 0 {
		t.Errorf("second requirement must not double-count CS4780, got %+v", out[1])
	}

	// Reversed order flips the assignment.
	out = TrackAll([]model.Requirement{second, first}, taken)
	if !out[0].Done {
		t.Errorf("reversed order: electives-b should now consume CS4780, got %+v", out[0])
	}
	if out[1].Done {
		t.Errorf("reversed order: electives-a must come up empty, got %+v", out[1])
	}
}

// Core requirements evaluate against the full taken set; a course may
// satisfy several of them, and electives, at once.
func TestTrackAllCoreDoubleCounts(t *testing.T) {
	core1 := model.Requirement{
		ID:     "core-a",
		Kind:   model.RequirementCore,
		Groups: [][]string{{"MATH1910"}},
	}
	core2 := model.Requirement{
		ID:     "core-b",
		Kind:   model.RequirementCore,
		Groups: [][]string{{"MATH1910", "MATH1920"}},
	}
	elective := model.Requirement{
		ID:      "math-electives",
		Kind:    model.RequirementElective,
		Courses: []string{"MATH1910"},
		Number:  1,
	}

	out := TrackAll([]model.Requirement{core1, core2, elective}, takenSet("MATH1910"))
	for i, c := range out {
		if !c.Done {
			t.Errorf("requirement %d (%s) should be done, got %+v", i, c.RequirementID, c)
		}
	}
}

func TestBelongsTo(t *testing.T) {
	core := model.Requirement{
		Kind:   model.RequirementCore,
		Groups: [][]string{{"CS1110", "CS1112"}, {"CS2110"}},
	}
	elective := model.Requirement{
		Kind:    model.RequirementElective,
		Courses: []string{"CS4410"},
	}

	if !BelongsTo(core, "CS1112") {
		t.Error("CS1112 belongs to the core requirement")
	}
	if BelongsTo(core, "CS4410") {
		t.Error("CS4410 does not belong to the core requirement")
	}
	if !BelongsTo(elective, "CS4410") {
		t.Error("CS4410 belongs to the elective pool")
	}
	if BelongsTo(elective, "CS1110") {
		t.Error("CS1110 does not belong to the elective pool")
	}
}
