package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPrereqSpecUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want PrereqSpec
	}{
		{
			name: "mixed string and array elements",
			data: `[["CS2110","CS2112"],"MATH2940"]`,
			want: PrereqSpec{{"CS2110", "CS2112"}, {"MATH2940"}},
		},
		{
			name: "all strings",
			data: `["CS3110","CS2800"]`,
			want: PrereqSpec{{"CS3110"}, {"CS2800"}},
		},
		{
			name: "empty array",
			data: `[]`,
			want: PrereqSpec{},
		},
		{
			name: "null decodes to empty",
			data: `null`,
			want: PrereqSpec{},
		},
		{
			name: "non-array decodes to nil",
			data: `"CS2110"`,
			want: nil,
		},
		{
			name: "malformed element discards the whole spec",
			data: `[["CS2110"],42]`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec PrereqSpec
			if err := json.Unmarshal([]byte(tt.data), &spec); err != nil {
				t.Fatalf("unmarshal must not error, got %v", err)
			}
			if !reflect.DeepEqual(spec, tt.want) {
				t.Errorf("spec = %#v, want %#v", spec, tt.want)
			}
		})
	}
}

func TestCourseLevel(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"1110", 1000},
		{"3110", 3000},
		{"4820", 4000},
		{"", 0},
		{"X99", 0},
	}

	for _, tt := range tests {
		c := Course{Number: tt.number}
		if got := c.Level(); got != tt.want {
			t.Errorf("Level(%q) = %d, want %d", tt.number, got, tt.want)
		}
	}
}

func TestCourseOfferedIn(t *testing.T) {
	c := Course{Semesters: []string{"FA26", "SP27"}}
	if !c.OfferedIn("FA26") {
		t.Error("FA26 should be offered")
	}
	if c.OfferedIn("SU26") {
		t.Error("SU26 should not be offered")
	}
	if (Course{}).OfferedIn("FA26") {
		t.Error("course without availability data is never offered")
	}
}
