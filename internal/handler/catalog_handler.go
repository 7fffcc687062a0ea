package handler

import (
	"errors"
	"net/http"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/response"
	"github.com/campuspath/campuspath-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListColleges godoc
// GET /api/v1/catalog/colleges
func (h *CatalogHandler) ListColleges(c *gin.Context) {
	colleges, err := h.catalogService.GetAllColleges(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if colleges == nil {
		colleges = []model.College{}
	}

	response.Success(c, http.StatusOK, gin.H{"colleges": colleges})
}

// ListSubjects godoc
// GET /api/v1/catalog/subjects
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.GetAllSubjects(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if subjects == nil {
		subjects = []model.Subject{}
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// ListSubjectCourses godoc
// GET /api/v1/catalog/subjects/:code/courses
func (h *CatalogHandler) ListSubjectCourses(c *gin.Context) {
	courses, err := h.catalogService.GetCoursesBySubject(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// GetCourse godoc
// GET /api/v1/catalog/courses/:id
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.catalogService.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// ListMajors godoc
// GET /api/v1/catalog/majors
func (h *CatalogHandler) ListMajors(c *gin.Context) {
	majors, err := h.catalogService.GetAllMajors(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if majors == nil {
		majors = []model.Major{}
	}

	response.Success(c, http.StatusOK, gin.H{"majors": majors})
}

// GetMajor godoc
// GET /api/v1/catalog/majors/:id
func (h *CatalogHandler) GetMajor(c *gin.Context) {
	major, err := h.catalogService.GetMajor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrMajorNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"major": major})
}
