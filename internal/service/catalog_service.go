package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campuspath/campuspath-backend/internal/config"
	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CatalogService serves catalog records through a read-through Redis cache.
// Cache failures degrade to direct database reads; a stale or missing cache
// entry is never an error the caller sees.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	courseRepo  *repository.CourseRepository
	reqRepo     *repository.RequirementRepository
	majorRepo   *repository.MajorRepository
	rdb         *redis.Client
	cfg         *config.Config
	log         zerolog.Logger
}

func NewCatalogService(
	catalogRepo *repository.CatalogRepository,
	courseRepo *repository.CourseRepository,
	reqRepo *repository.RequirementRepository,
	majorRepo *repository.MajorRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		courseRepo:  courseRepo,
		reqRepo:     reqRepo,
		majorRepo:   majorRepo,
		rdb:         rdb,
		cfg:         cfg,
		log:         log.With().Str("component", "catalog_service").Logger(),
	}
}

// GetCourse fetches one course by ID, cache first.
func (s *CatalogService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	key := config.CacheKey.CourseKey(id)

	var cached model.Course
	if ok := s.cacheGet(ctx, key, &cached); ok {
		return &cached, nil
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, course)
	return course, nil
}

// GetCoursesBySubject fetches a subject's course list, cache first.
func (s *CatalogService) GetCoursesBySubject(ctx context.Context, subjectCode string) ([]model.Course, error) {
	key := config.CacheKey.SubjectCoursesKey(subjectCode)

	var cached []model.Course
	if ok := s.cacheGet(ctx, key, &cached); ok {
		return cached, nil
	}

	courses, err := s.courseRepo.GetBySubject(ctx, subjectCode)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, courses)
	return courses, nil
}

// GetRequirement fetches one decoded requirement by ID, cache first.
func (s *CatalogService) GetRequirement(ctx context.Context, id string) (*model.Requirement, error) {
	key := config.CacheKey.RequirementKey(id)

	var cached model.Requirement
	if ok := s.cacheGet(ctx, key, &cached); ok {
		return &cached, nil
	}

	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, req)
	return req, nil
}

// GetRequirements fetches a list of requirements by ID, preserving order.
// A missing or malformed requirement is skipped with a warn log rather
// than failing the whole pass; the report degrades to the requirements
// that do resolve.
func (s *CatalogService) GetRequirements(ctx context.Context, ids []string) ([]model.Requirement, error) {
	reqs := make([]model.Requirement, 0, len(ids))
	for _, id := range ids {
		req, err := s.GetRequirement(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("requirement_id", id).Msg("Skipping unresolvable requirement")
			continue
		}
		reqs = append(reqs, *req)
	}
	return reqs, nil
}

// GetMajor fetches one major by ID, cache first.
func (s *CatalogService) GetMajor(ctx context.Context, id string) (*model.Major, error) {
	key := config.CacheKey.MajorKey(id)

	var cached model.Major
	if ok := s.cacheGet(ctx, key, &cached); ok {
		return &cached, nil
	}

	major, err := s.majorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, major)
	return major, nil
}

// GetAllMajors lists every major. Uncached, browse path only.
func (s *CatalogService) GetAllMajors(ctx context.Context) ([]model.Major, error) {
	return s.majorRepo.GetAll(ctx)
}

// GetAllColleges lists every college, cache first.
func (s *CatalogService) GetAllColleges(ctx context.Context) ([]model.College, error) {
	key := config.CacheKey.CollegeListKey()

	var cached []model.College
	if ok := s.cacheGet(ctx, key, &cached); ok {
		return cached, nil
	}

	colleges, err := s.catalogRepo.GetAllColleges(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, colleges)
	return colleges, nil
}

// GetAllSubjects lists every subject, cache first.
func (s *CatalogService) GetAllSubjects(ctx context.Context) ([]model.Subject, error) {
	key := config.CacheKey.SubjectListKey()

	var cached []model.Subject
	if ok := s.cacheGet(ctx, key, &cached); ok {
		return cached, nil
	}

	subjects, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, subjects)
	return subjects, nil
}

// PrewarmCatalog loads the college and subject lists plus every subject's
// course list into Redis before the server accepts traffic, so first
// requests do not stampede PostgreSQL.
func (s *CatalogService) PrewarmCatalog(ctx context.Context) error {
	if _, err := s.GetAllColleges(ctx); err != nil {
		return fmt.Errorf("prewarm colleges: %w", err)
	}

	subjects, err := s.GetAllSubjects(ctx)
	if err != nil {
		return fmt.Errorf("prewarm subjects: %w", err)
	}

	for _, subject := range subjects {
		if _, err := s.GetCoursesBySubject(ctx, subject.Code); err != nil {
			return fmt.Errorf("prewarm courses for %s: %w", subject.Code, err)
		}
	}

	s.log.Info().Int("subjects", len(subjects)).Msg("Catalog cache prewarmed")
	return nil
}

// cacheGet loads and decodes a cached value. Returns false on miss or any
// cache/decode failure.
func (s *CatalogService) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache decode failed")
		return false
	}
	return true
}

// cacheSet stores a value with the configured TTL. Failures are logged only.
func (s *CatalogService) cacheSet(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache encode failed")
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cfg.CatalogCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
