package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered planner account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	// Profile selection driving requirement resolution. All optional until
	// onboarding completes.
	MajorID       *string   `json:"major_id,omitempty"`
	CollegeID     *string   `json:"college_id,omitempty"`
	Concentration *string   `json:"concentration,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest selects the user's major, college and concentration.
type UpdateProfileRequest struct {
	MajorID       *string `json:"major_id" binding:"omitempty,min=1,max=64"`
	CollegeID     *string `json:"college_id" binding:"omitempty,min=1,max=16"`
	Concentration *string `json:"concentration" binding:"omitempty,min=1,max=100"`
}

// AddCourseRequest places a course on the schedule.
type AddCourseRequest struct {
	CourseID string   `json:"course_id" binding:"required,min=2,max=16"`
	Semester string   `json:"semester" binding:"required,min=6,max=24"`
	Taken    bool     `json:"taken"`
	Credits  *float64 `json:"credits" binding:"omitempty,gte=0,lte=12"`
}

// MoveCourseRequest relocates a scheduled course to another semester.
type MoveCourseRequest struct {
	Semester string `json:"semester" binding:"required,min=6,max=24"`
	Taken    bool   `json:"taken"`
}

// RecommendRequest asks for a filtered, scored, ranked course list.
type RecommendRequest struct {
	// Subject limits candidates to one subject code; empty falls back to the
	// major's recommended initial courses.
	Subject string `json:"subject" binding:"omitempty,min=1,max=16"`
	// Semester is the planning semester label, e.g. "Fall 2026".
	Semester string    `json:"semester" binding:"required,min=6,max=24"`
	Filters  FilterSet `json:"filters" binding:"omitempty"`
}
