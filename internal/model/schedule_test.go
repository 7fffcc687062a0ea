package model

import (
	"errors"
	"testing"
)

const testUserID = "8b2f6f2e-0000-0000-0000-000000000001"

func seedSchedule(t *testing.T) Schedule {
	t.Helper()
	s := NewSchedule()
	s.Planned["Fall 2026"] = []CourseRef{{ID: "CS3110", Title: "Data Structures and Functional Programming"}}
	s.Taken["Spring 2026"] = []CourseRef{{ID: "CS2110", Title: "Object-Oriented Programming"}}
	return s
}

func TestWithCourseAdded(t *testing.T) {
	s := seedSchedule(t)

	next, cmd, err := s.WithCourseAdded(testUserID, "Fall 2026", CourseRef{ID: "CS2800"}, false)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(next.Planned["Fall 2026"]) != 2 {
		t.Errorf("Fall 2026 planned = %d courses, want 2", len(next.Planned["Fall 2026"]))
	}
	if len(s.Planned["Fall 2026"]) != 1 {
		t.Error("transform mutated the receiver")
	}
	if cmd.UserID != testUserID {
		t.Errorf("command UserID = %q, want %q", cmd.UserID, testUserID)
	}
	if !cmd.Schedule.Contains("CS2800") {
		t.Error("persist command must carry the post-transform schedule")
	}
	if cmd.IssuedAt.IsZero() {
		t.Error("persist command must be timestamped")
	}

	// Adding into the taken mapping.
	next, _, err = s.WithCourseAdded(testUserID, "Fall 2025", CourseRef{ID: "MATH1910"}, true)
	if err != nil {
		t.Fatalf("add taken: %v", err)
	}
	if len(next.Taken["Fall 2025"]) != 1 {
		t.Error("taken add landed in the wrong mapping")
	}
}

func TestWithCourseAddedDuplicate(t *testing.T) {
	s := seedSchedule(t)

	// Already planned.
	if _, _, err := s.WithCourseAdded(testUserID, "Spring 2027", CourseRef{ID: "CS3110"}, false); !errors.Is(err, ErrCourseAlreadyScheduled) {
		t.Errorf("planned duplicate: err = %v, want ErrCourseAlreadyScheduled", err)
	}
	// Already taken, targeting the other mapping.
	if _, _, err := s.WithCourseAdded(testUserID, "Fall 2026", CourseRef{ID: "CS2110"}, false); !errors.Is(err, ErrCourseAlreadyScheduled) {
		t.Errorf("taken duplicate: err = %v, want ErrCourseAlreadyScheduled", err)
	}
}

func TestWithCourseRemoved(t *testing.T) {
	s := seedSchedule(t)

	next, cmd, err := s.WithCourseRemoved(testUserID, "CS3110")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if next.Contains("CS3110") {
		t.Error("course still present after removal")
	}
	if _, ok := next.Planned["Fall 2026"]; ok {
		t.Error("emptied semester should be dropped from the mapping")
	}
	if !s.Contains("CS3110") {
		t.Error("transform mutated the receiver")
	}
	if cmd.Schedule.Contains("CS3110") {
		t.Error("persist command must carry the post-transform schedule")
	}

	if _, _, err := s.WithCourseRemoved(testUserID, "CS9999"); !errors.Is(err, ErrCourseNotScheduled) {
		t.Errorf("unknown course: err = %v, want ErrCourseNotScheduled", err)
	}
}

func TestWithCourseMoved(t *testing.T) {
	s := seedSchedule(t)

	// Planned → taken in a different semester; the stored ref survives.
	next, cmd, err := s.WithCourseMoved(testUserID, "CS3110", "Spring 2026", true)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(next.Taken["Spring 2026"]) != 2 {
		t.Errorf("Spring 2026 taken = %d courses, want 2", len(next.Taken["Spring 2026"]))
	}
	if _, ok := next.Planned["Fall 2026"]; ok {
		t.Error("source semester should be emptied")
	}
	moved := next.Taken["Spring 2026"][1]
	if moved.Title != "Data Structures and Functional Programming" {
		t.Errorf("moved ref lost its title: %+v", moved)
	}
	if !cmd.Schedule.Contains("CS3110") {
		t.Error("persist command must carry the moved course")
	}

	if _, _, err := s.WithCourseMoved(testUserID, "CS9999", "Fall 2026", false); !errors.Is(err, ErrCourseNotScheduled) {
		t.Errorf("unknown course: err = %v, want ErrCourseNotScheduled", err)
	}
}

func TestTakenSetAndContains(t *testing.T) {
	s := seedSchedule(t)

	set := s.TakenSet()
	if _, ok := set["CS2110"]; !ok {
		t.Error("TakenSet missing CS2110")
	}
	if _, ok := set["CS3110"]; ok {
		t.Error("TakenSet must not include planned courses")
	}

	if !s.Contains("CS3110") || !s.Contains("CS2110") {
		t.Error("Contains must cover both mappings")
	}
	if s.Contains("CS1110") {
		t.Error("Contains reported an absent course")
	}
}
