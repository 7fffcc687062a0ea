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

type PlannerHandler struct {
	plannerService *service.PlannerService
	userService    *service.UserService
}

func NewPlannerHandler(plannerService *service.PlannerService, userService *service.UserService) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		userService:    userService,
	}
}

// GetRequirements godoc
// GET /api/v1/plan/requirements
func (h *PlannerHandler) GetRequirements(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	report, err := h.plannerService.RequirementReport(c.Request.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoMajorSelected):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoMajorSelected)
		case errors.Is(err, service.ErrUnknownCollege):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrUnknownCollege)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrMajorNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report})
}

// GetEligibility godoc
// GET /api/v1/plan/courses/:id/eligibility
func (h *PlannerHandler) GetEligibility(c *gin.Context) {
	claims := middleware.GetClaims(c)

	eligibility, err := h.plannerService.CourseEligibility(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"eligibility": eligibility})
}

// Recommend godoc
// POST /api/v1/plan/recommendations
func (h *PlannerHandler) Recommend(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req model.RecommendRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.plannerService.Recommend(c.Request.Context(), user, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSuperseded):
			response.Fail(c, http.StatusConflict, response.ErrPassSuperseded)
		case errors.Is(err, service.ErrUnknownSemester):
			response.Fail(c, http.StatusBadRequest, response.ErrUnknownSemester)
		case errors.Is(err, service.ErrNoMajorSelected):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoMajorSelected)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recommendations": result})
}

func (h *PlannerHandler) currentUser(c *gin.Context) (*model.User, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return nil, false
	}

	user, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return nil, false
	}
	return user, true
}
