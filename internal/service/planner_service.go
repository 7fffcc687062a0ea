package service

import (
	"context"
	"errors"
	"sync"

	"github.com/campuspath/campuspath-backend/internal/config"
	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/planner"
	"github.com/rs/zerolog"
)

// Planner orchestration errors.
var (
	// ErrSuperseded marks a recomputation pass that finished after a newer
	// one started for the same user; its result must be discarded.
	ErrSuperseded = errors.New("recomputation superseded by a newer request")
	// ErrNoMajorSelected is returned when a requirement report is requested
	// before the user picked a major and college.
	ErrNoMajorSelected = errors.New("no major/college selected")
	// ErrUnknownCollege is returned when the major has no requirement entry
	// for the user's college.
	ErrUnknownCollege = errors.New("major has no entry for this college")
	// ErrUnknownSemester is returned for an unparseable planning semester label.
	ErrUnknownSemester = errors.New("unknown planning semester label")
)

// RequirementReport is the completion report for one user.
type RequirementReport struct {
	MajorID     string               `json:"major_id"`
	CollegeID   string               `json:"college_id"`
	Completions []planner.Completion `json:"completions"`
}

// RecommendResult is a ranked, paginated recommendation pass.
type RecommendResult struct {
	Semester  string                   `json:"semester"`
	Total     int                      `json:"total"`
	Pages     [][]planner.ScoredCourse `json:"pages"`
	Completed []model.Course           `json:"completed"`
}

// PlannerService runs recomputation passes: it resolves and fetches every
// record a pass needs, then hands the in-memory data to the pure planner
// functions. Passes are last-request-wins per user: a pass that finishes
// after a newer one started returns ErrSuperseded.
type PlannerService struct {
	catalog  *CatalogService
	schedule *ScheduleService
	cfg      *config.Config
	log      zerolog.Logger

	mu     sync.Mutex
	latest map[string]uint64
}

func NewPlannerService(catalog *CatalogService, schedule *ScheduleService, cfg *config.Config, log zerolog.Logger) *PlannerService {
	return &PlannerService{
		catalog:  catalog,
		schedule: schedule,
		cfg:      cfg,
		log:      log.With().Str("component", "planner_service").Logger(),
		latest:   map[string]uint64{},
	}
}

// RequirementReport resolves the user's applicable requirements and tracks
// completion against the taken set. Concentration requirements, when
// selected, are appended after the basic list; TrackAll's greedy elective
// assignment therefore favors basic requirements.
func (s *PlannerService) RequirementReport(ctx context.Context, user *model.User) (*RequirementReport, error) {
	if user.MajorID == nil || user.CollegeID == nil {
		return nil, ErrNoMajorSelected
	}

	major, err := s.catalog.GetMajor(ctx, *user.MajorID)
	if err != nil {
		return nil, err
	}

	ids, ok := planner.ResolveCollegeRequirements(*major, *user.CollegeID)
	if !ok {
		return nil, ErrUnknownCollege
	}
	if user.Concentration != nil {
		if conIDs, ok := planner.ResolveConcentrationRequirements(*major, *user.Concentration); ok {
			ids = append(append([]string{}, ids...), conIDs...)
		}
	}

	reqs, err := s.catalog.GetRequirements(ctx, ids)
	if err != nil {
		return nil, err
	}

	schedule, err := s.schedule.Get(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	return &RequirementReport{
		MajorID:     *user.MajorID,
		CollegeID:   *user.CollegeID,
		Completions: planner.TrackAll(reqs, schedule.TakenSet()),
	}, nil
}

// CourseEligibility checks one course's prerequisites against the user's
// taken set.
func (s *PlannerService) CourseEligibility(ctx context.Context, userID, courseID string) (planner.Eligibility, error) {
	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		return planner.Eligibility{}, err
	}
	schedule, err := s.schedule.Get(ctx, userID)
	if err != nil {
		return planner.Eligibility{}, err
	}
	return planner.CheckEligibility(course.Prereqs, schedule.TakenSet()), nil
}

// Recommend runs one full filter/scoring pass. All records are fetched
// before scoring begins; the pipeline itself never does I/O.
func (s *PlannerService) Recommend(ctx context.Context, user *model.User, req model.RecommendRequest) (*RecommendResult, error) {
	passID := s.beginPass(user.ID.String())

	termCode := planner.TermCode(req.Semester)
	if termCode == "" {
		return nil, ErrUnknownSemester
	}

	schedule, err := s.schedule.Get(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}
	takenSet := schedule.TakenSet()

	candidates, err := s.resolveCandidates(ctx, user, req.Subject)
	if err != nil {
		return nil, err
	}

	reqs := s.applicableRequirements(ctx, user)

	result := planner.FilterCourses(candidates, req.Filters, planner.FilterInput{
		TakenSet:     takenSet,
		Requirements: reqs,
		TermCode:     termCode,
	})

	if !s.isLatestPass(user.ID.String(), passID) {
		s.log.Debug().Str("user_id", user.ID.String()).Msg("Discarding superseded recomputation")
		return nil, ErrSuperseded
	}

	return &RecommendResult{
		Semester:  req.Semester,
		Total:     len(result.Ranked),
		Pages:     planner.Paginate(result.Ranked, s.cfg.RecommendPageSize),
		Completed: result.Completed,
	}, nil
}

// resolveCandidates picks the candidate course list: the requested subject
// when given, otherwise the major's recommended initial courses.
func (s *PlannerService) resolveCandidates(ctx context.Context, user *model.User, subject string) ([]model.Course, error) {
	if subject != "" {
		return s.catalog.GetCoursesBySubject(ctx, subject)
	}

	if user.MajorID == nil {
		return nil, ErrNoMajorSelected
	}
	major, err := s.catalog.GetMajor(ctx, *user.MajorID)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Course, 0, len(major.InitialCourses))
	for _, id := range major.InitialCourses {
		course, err := s.catalog.GetCourse(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("course_id", id).Msg("Skipping unresolvable initial course")
			continue
		}
		candidates = append(candidates, *course)
	}
	return candidates, nil
}

// applicableRequirements fetches the user's requirements for filter
// matching. Users without a full profile simply get no requirement-tag
// matches; that is not an error for recommendation purposes.
func (s *PlannerService) applicableRequirements(ctx context.Context, user *model.User) []model.Requirement {
	if user.MajorID == nil || user.CollegeID == nil {
		return nil
	}
	major, err := s.catalog.GetMajor(ctx, *user.MajorID)
	if err != nil {
		s.log.Warn().Err(err).Str("major_id", *user.MajorID).Msg("Major lookup failed during pass")
		return nil
	}
	ids, ok := planner.ResolveCollegeRequirements(*major, *user.CollegeID)
	if !ok {
		return nil
	}
	reqs, err := s.catalog.GetRequirements(ctx, ids)
	if err != nil {
		return nil
	}
	return reqs
}

func (s *PlannerService) beginPass(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[userID]++
	return s.latest[userID]
}

func (s *PlannerService) isLatestPass(userID string, passID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[userID] == passID
}
