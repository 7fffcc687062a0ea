package model

import (
	"errors"
	"time"
)

var (
	// ErrCourseAlreadyScheduled is returned when adding a course that is
	// already present in either the planned or taken mapping.
	ErrCourseAlreadyScheduled = errors.New("course already present on the schedule")
	// ErrCourseNotScheduled is returned when removing a course that is not
	// on the schedule.
	ErrCourseNotScheduled = errors.New("course not present on the schedule")
)

// CourseRef is a lightweight course reference stored on a schedule.
type CourseRef struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Credits *float64 `json:"credits,omitempty"`
}

// Schedule is one user's course plan: two mappings from semester label
// (e.g. "Fall 2026") to an ordered course list. A course ID appears in at
// most one semester across both mappings.
type Schedule struct {
	Planned map[string][]CourseRef `json:"planned"`
	Taken   map[string][]CourseRef `json:"taken"`
}

// NewSchedule returns an empty schedule with initialized mappings.
func NewSchedule() Schedule {
	return Schedule{
		Planned: map[string][]CourseRef{},
		Taken:   map[string][]CourseRef{},
	}
}

// PersistCommand describes the write a schedule transform produced. The
// transforms themselves never touch storage; callers enqueue the command.
type PersistCommand struct {
	UserID   string    `json:"user_id"`
	Schedule Schedule  `json:"schedule"`
	IssuedAt time.Time `json:"issued_at"`
}

// TakenSet flattens the taken mapping into a set of course IDs.
func (s Schedule) TakenSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, refs := range s.Taken {
		for _, ref := range refs {
			set[ref.ID] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the course appears anywhere on the schedule.
func (s Schedule) Contains(courseID string) bool {
	for _, m := range []map[string][]CourseRef{s.Planned, s.Taken} {
		for _, refs := range m {
			for _, ref := range refs {
				if ref.ID == courseID {
					return true
				}
			}
		}
	}
	return false
}

// clone deep-copies the schedule so transforms never alias the input maps.
func (s Schedule) clone() Schedule {
	out := NewSchedule()
	for sem, refs := range s.Planned {
		out.Planned[sem] = append([]CourseRef(nil), refs...)
	}
	for sem, refs := range s.Taken {
		out.Taken[sem] = append([]CourseRef(nil), refs...)
	}
	return out
}

// WithCourseAdded returns a new schedule with the course appended to the
// given semester, plus the persist command for the write. taken selects the
// mapping. The receiver is not mutated.
func (s Schedule) WithCourseAdded(userID, semester string, ref CourseRef, taken bool) (Schedule, PersistCommand, error) {
	if s.Contains(ref.ID) {
		return s, PersistCommand{}, ErrCourseAlreadyScheduled
	}

	next := s.clone()
	if taken {
		next.Taken[semester] = append(next.Taken[semester], ref)
	} else {
		next.Planned[semester] = append(next.Planned[semester], ref)
	}
	return next, next.persistCommand(userID), nil
}

// WithCourseRemoved returns a new schedule with the course removed from
// whichever mapping and semester holds it, plus the persist command.
func (s Schedule) WithCourseRemoved(userID, courseID string) (Schedule, PersistCommand, error) {
	if !s.Contains(courseID) {
		return s, PersistCommand{}, ErrCourseNotScheduled
	}

	next := s.clone()
	for _, m := range []map[string][]CourseRef{next.Planned, next.Taken} {
		for sem, refs := range m {
			kept := refs[:0]
			for _, ref := range refs {
				if ref.ID != courseID {
					kept = append(kept, ref)
				}
			}
			if len(kept) == 0 {
				delete(m, sem)
			} else {
				m[sem] = kept
			}
		}
	}
	return next, next.persistCommand(userID), nil
}

// WithCourseMoved relocates a course to another semester/mapping in one
// transform, preserving its stored reference.
func (s Schedule) WithCourseMoved(userID, courseID, toSemester string, taken bool) (Schedule, PersistCommand, error) {
	var moved *CourseRef
	for _, m := range []map[string][]CourseRef{s.Planned, s.Taken} {
		for _, refs := range m {
			for _, ref := range refs {
				if ref.ID == courseID {
					r := ref
					moved = &r
				}
			}
		}
	}
	if moved == nil {
		return s, PersistCommand{}, ErrCourseNotScheduled
	}

	next, _, err := s.WithCourseRemoved(userID, courseID)
	if err != nil {
		return s, PersistCommand{}, err
	}
	return next.WithCourseAdded(userID, toSemester, *moved, taken)
}

func (s Schedule) persistCommand(userID string) PersistCommand {
	return PersistCommand{
		UserID:   userID,
		Schedule: s,
		IssuedAt: time.Now().UTC(),
	}
}
