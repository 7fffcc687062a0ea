package planner

import (
	"reflect"
	"testing"

	"github.com/campuspath/campuspath-backend/internal/model"
)

func takenSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestCheckEligibility(t *testing.T) {
	spec := model.PrereqSpec{
		{"CS2110", "CS2112"},
		{"MATH2940"},
	}

	tests := []struct {
		name        string
		spec        model.PrereqSpec
		taken       map[string]struct{}
		wantOK      bool
		wantMissing []string
	}{
		{
			name:        "nil spec is always eligible",
			spec:        nil,
			taken:       takenSet(),
			wantOK:      true,
			wantMissing: []string{},
		},
		{
			name:        "empty spec is always eligible",
			spec:        model.PrereqSpec{},
			taken:       takenSet(),
			wantOK:      true,
			wantMissing: []string{},
		},
		{
			name:        "all groups satisfied",
			spec:        spec,
			taken:       takenSet("CS2112", "MATH2940"),
			wantOK:      true,
			wantMissing: []string{},
		},
		{
			name:        "alternative within a group suffices",
			spec:        spec,
			taken:       takenSet("CS2110", "MATH2940"),
			wantOK:      true,
			wantMissing: []string{},
		},
		{
			name:        "one group unsatisfied",
			spec:        spec,
			taken:       takenSet("MATH2940"),
			wantOK:      false,
			wantMissing: []string{"CS2110 or CS2112"},
		},
		{
			name:        "every group unsatisfied",
			spec:        spec,
			taken:       takenSet(),
			wantOK:      false,
			wantMissing: []string{"CS2110 or CS2112", "MATH2940"},
		},
		{
			name:        "empty group is skipped",
			spec:        model.PrereqSpec{{}, {"CS1110"}},
			taken:       takenSet("CS1110"),
			wantOK:      true,
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckEligibility(tt.spec, tt.taken)
			if got.Eligible != tt.wantOK {
				t.Errorf("Eligible = %v, want %v", got.Eligible, tt.wantOK)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
		})
	}
}

// Taking more courses can never revoke eligibility.
func TestCheckEligibilityMonotonic(t *testing.T) {
	spec := model.PrereqSpec{{"CS2110", "CS2112"}, {"MATH1920"}}

	taken := takenSet("CS2110", "MATH1920")
	if got := CheckEligibility(spec, taken); !got.Eligible {
		t.Fatalf("expected eligible with %v", taken)
	}

	taken["PHYS1112"] = struct{}{}
	taken["CS2112"] = struct{}{}
	if got := CheckEligibility(spec, taken); !got.Eligible {
		t.Errorf("superset of a satisfying set must stay eligible, got %+v", got)
	}
}
