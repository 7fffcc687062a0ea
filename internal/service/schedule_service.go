package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/campuspath/campuspath-backend/internal/config"
	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ScheduleEvent is published on the user's pubsub channel after every
// schedule mutation; websocket subscribers use it to re-request plans.
type ScheduleEvent struct {
	UserID   string `json:"user_id"`
	Action   string `json:"action"` // "add", "remove", "move"
	CourseID string `json:"course_id"`
}

// ScheduleService owns the user's schedule session state. Mutations are
// pure transforms on model.Schedule; the resulting persist command goes on
// a Redis queue fire-and-forget. Enqueue failures are logged and the
// in-session state stays applied. Transforms are serialized per user with
// a per-user mutex.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	rdb          *redis.Client
	log          zerolog.Logger

	mu sync.Mutex
	// sessions holds the latest applied schedule per user, ahead of the
	// asynchronous persist.
	sessions map[string]model.Schedule
	// userMu serializes transforms per user.
	userMu map[string]*sync.Mutex
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository, rdb *redis.Client, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "schedule_service").Logger(),
		sessions:     map[string]model.Schedule{},
		userMu:       map[string]*sync.Mutex{},
	}
}

// Get returns the user's current schedule: the in-session state when a
// mutation is ahead of persistence, otherwise the stored document.
func (s *ScheduleService) Get(ctx context.Context, userID string) (model.Schedule, error) {
	s.mu.Lock()
	cached, ok := s.sessions[userID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}
	return s.scheduleRepo.Get(ctx, userID)
}

// AddCourse places a course on the schedule and enqueues the persist.
func (s *ScheduleService) AddCourse(ctx context.Context, userID, semester string, ref model.CourseRef, taken bool) (model.Schedule, error) {
	return s.mutate(ctx, userID, "add", ref.ID, func(cur model.Schedule) (model.Schedule, model.PersistCommand, error) {
		return cur.WithCourseAdded(userID, semester, ref, taken)
	})
}

// RemoveCourse removes a course from wherever it sits on the schedule.
func (s *ScheduleService) RemoveCourse(ctx context.Context, userID, courseID string) (model.Schedule, error) {
	return s.mutate(ctx, userID, "remove", courseID, func(cur model.Schedule) (model.Schedule, model.PersistCommand, error) {
		return cur.WithCourseRemoved(userID, courseID)
	})
}

// MoveCourse relocates a scheduled course to another semester/mapping.
func (s *ScheduleService) MoveCourse(ctx context.Context, userID, courseID, toSemester string, taken bool) (model.Schedule, error) {
	return s.mutate(ctx, userID, "move", courseID, func(cur model.Schedule) (model.Schedule, model.PersistCommand, error) {
		return cur.WithCourseMoved(userID, courseID, toSemester, taken)
	})
}

func (s *ScheduleService) mutate(
	ctx context.Context,
	userID, action, courseID string,
	transform func(model.Schedule) (model.Schedule, model.PersistCommand, error),
) (model.Schedule, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.Get(ctx, userID)
	if err != nil {
		return model.Schedule{}, err
	}

	next, cmd, err := transform(current)
	if err != nil {
		return model.Schedule{}, err
	}

	s.mu.Lock()
	s.sessions[userID] = next
	s.mu.Unlock()

	s.enqueuePersist(ctx, cmd)
	s.publishEvent(ctx, ScheduleEvent{UserID: userID, Action: action, CourseID: courseID})

	return next, nil
}

// enqueuePersist pushes the persist command onto the worker queue.
// Fire-and-forget: a failed enqueue is logged, never surfaced, and the
// session state stays applied.
func (s *ScheduleService) enqueuePersist(ctx context.Context, cmd model.PersistCommand) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", cmd.UserID).Msg("Encode persist command failed")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.PersistScheduleQueue, payload).Err(); err != nil {
		s.log.Error().Err(err).Str("user_id", cmd.UserID).Msg("Enqueue persist command failed")
	}
}

func (s *ScheduleService) publishEvent(ctx context.Context, ev ScheduleEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.ScheduleChannel(ev.UserID), payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("user_id", ev.UserID).Msg("Publish schedule event failed")
	}
}

func (s *ScheduleService) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userMu[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userMu[userID] = lock
	}
	return lock
}
