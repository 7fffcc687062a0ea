package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseKey returns the cache key for a catalog course document
func (r *CacheKeyStruct) CourseKey(courseID string) string {
	return fmt.Sprintf("catalog:course:%s", courseID)
}

// SubjectCoursesKey returns the cache key for a subject's course list
func (r *CacheKeyStruct) SubjectCoursesKey(subjectCode string) string {
	return fmt.Sprintf("catalog:subject:%s:courses", subjectCode)
}

// RequirementKey returns the cache key for a requirement document
func (r *CacheKeyStruct) RequirementKey(requirementID string) string {
	return fmt.Sprintf("catalog:requirement:%s", requirementID)
}

// MajorKey returns the cache key for a major document
func (r *CacheKeyStruct) MajorKey(majorID string) string {
	return fmt.Sprintf("catalog:major:%s", majorID)
}

// CollegeListKey returns the cache key for the full college list
func (r *CacheKeyStruct) CollegeListKey() string {
	return "catalog:colleges"
}

// SubjectListKey returns the cache key for the full subject list
func (r *CacheKeyStruct) SubjectListKey() string {
	return "catalog:subjects"
}

// ScheduleChannel returns the Redis PubSub channel for a user's schedule events
func (r *CacheKeyStruct) ScheduleChannel(userID string) string {
	return fmt.Sprintf("user:%s:schedule:events", userID)
}

var CacheKey = NewCacheKeyStruct()
