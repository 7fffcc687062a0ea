package handler

import (
	"errors"
	"net/http"

	"github.com/campuspath/campuspath-backend/internal/middleware"
	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/response"
	"github.com/campuspath/campuspath-backend/internal/service"
	"github.com/campuspath/campuspath-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	catalogService  *service.CatalogService
	userService     *service.UserService
}

func NewScheduleHandler(scheduleService *service.ScheduleService, catalogService *service.CatalogService, userService *service.UserService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		catalogService:  catalogService,
		userService:     userService,
	}
}

// GetSchedule godoc
// GET /api/v1/plan/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)
	schedule, err := h.scheduleService.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

// AddCourse godoc
// POST /api/v1/plan/schedule/courses
func (h *ScheduleHandler) AddCourse(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	// Resolve the catalog record so the stored reference carries a title.
	course, err := h.catalogService.GetCourse(c.Request.Context(), req.CourseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	title := course.ShortTitle
	if title == "" {
		title = course.Title
	}
	ref := model.CourseRef{ID: course.ID, Title: title, Credits: req.Credits}

	schedule, err := h.scheduleService.AddCourse(c.Request.Context(), claims.UserID, req.Semester, ref, req.Taken)
	if err != nil {
		if errors.Is(err, model.ErrCourseAlreadyScheduled) {
			response.Fail(c, http.StatusConflict, response.ErrCourseScheduled)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"schedule": schedule})
}

// RemoveCourse godoc
// DELETE /api/v1/plan/schedule/courses/:course_id
func (h *ScheduleHandler) RemoveCourse(c *gin.Context) {
	claims := middleware.GetClaims(c)

	schedule, err := h.scheduleService.RemoveCourse(c.Request.Context(), claims.UserID, c.Param("course_id"))
	if err != nil {
		if errors.Is(err, model.ErrCourseNotScheduled) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

// MoveCourse godoc
// PUT /api/v1/plan/schedule/courses/:course_id
func (h *ScheduleHandler) MoveCourse(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.MoveCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	schedule, err := h.scheduleService.MoveCourse(c.Request.Context(), claims.UserID, c.Param("course_id"), req.Semester, req.Taken)
	if err != nil {
		if errors.Is(err, model.ErrCourseNotScheduled) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

// UpdateProfile godoc
// PUT /api/v1/plan/profile
func (h *ScheduleHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrMajorNotFound)
		case errors.Is(err, service.ErrUnknownCollege):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrUnknownCollege)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
