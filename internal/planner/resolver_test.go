package planner

import (
	"reflect"
	"testing"

	"github.com/campuspath/campuspath-backend/internal/model"
)

func TestResolveCollegeRequirements(t *testing.T) {
	major := model.Major{
		ID: "cs",
		BasicRequirements: []model.CollegeRequirements{
			{College: "AS", Requirements: []string{"cs-core", "as-liberal"}},
			{College: "EN", Requirements: []string{"cs-core", "en-common"}},
		},
	}

	got, ok := ResolveCollegeRequirements(major, "EN")
	if !ok {
		t.Fatal("EN entry should resolve")
	}
	if want := []string{"cs-core", "en-common"}; !reflect.DeepEqual(got, want) {
		t.Errorf("requirements = %v, want %v", got, want)
	}

	if _, ok := ResolveCollegeRequirements(major, "AG"); ok {
		t.Error("missing college must report not found, not an empty list")
	}
}

func TestResolveConcentrationRequirements(t *testing.T) {
	major := model.Major{
		ID: "cs",
		Concentrations: []model.Concentration{
			{Name: "Machine Learning", Requirements: []string{"ml-core"}},
		},
	}

	got, ok := ResolveConcentrationRequirements(major, "Machine Learning")
	if !ok || !reflect.DeepEqual(got, []string{"ml-core"}) {
		t.Errorf("concentration resolve = %v, %v", got, ok)
	}

	if _, ok := ResolveConcentrationRequirements(major, "Systems"); ok {
		t.Error("unknown concentration must report not found")
	}
}
