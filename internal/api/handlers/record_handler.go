package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"gpa-tracker/internal/domain/academic"
	"gpa-tracker/internal/infrastructure/share"
	interfaces "gpa-tracker/internal/interfaces/service"
	"gpa-tracker/internal/service"
	"gpa-tracker/pkg/logger"
	"gpa-tracker/pkg/validator"

	"github.com/gin-gonic/gin"
)

// RecordHandler exposes the academic record session over HTTP
type RecordHandler struct {
	recordService interfaces.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService interfaces.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	// Warning is set when a change was applied but could not be saved
	Warning string `json:"warning,omitempty"`
}

// SemestersView is the payload of GET /semesters
type SemestersView struct {
	Current   int                        `json:"current"`
	Semesters []academic.SemesterSummary `json:"semesters"`
}

// ListGradingSystems handles GET /grading-systems
func (h *RecordHandler) ListGradingSystems(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    academic.GradingSystems(),
	})
}

// SetGradingSystem handles PUT /grading-system
func (h *RecordHandler) SetGradingSystem(c *gin.Context) {
	var req validator.GradingSystemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	gs, err := h.recordService.SetGradingSystem(c.Request.Context(), req.System)
	respond(c, http.StatusOK, "Grading system updated", gs, err)
}

// GetRecord handles GET /record
func (h *RecordHandler) GetRecord(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    h.recordService.View(),
	})
}

// ListSemesters handles GET /semesters
func (h *RecordHandler) ListSemesters(c *gin.Context) {
	view := h.recordService.View()
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: SemestersView{
			Current:   view.Current,
			Semesters: view.Summary.Semesters,
		},
	})
}

// AddSemester handles POST /semesters
func (h *RecordHandler) AddSemester(c *gin.Context) {
	var req validator.SemesterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sem, err := h.recordService.AddSemester(c.Request.Context(), req.Name)
	respond(c, http.StatusCreated, "Semester added", sem, err)
}

// RenameSemester handles PUT /semesters/:index
func (h *RecordHandler) RenameSemester(c *gin.Context) {
	index, ok := semesterIndex(c)
	if !ok {
		return
	}
	var req validator.SemesterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	err := h.recordService.RenameSemester(c.Request.Context(), index, req.Name)
	respond(c, http.StatusOK, "Semester renamed", nil, err)
}

// DeleteSemester handles DELETE /semesters/:index
func (h *RecordHandler) DeleteSemester(c *gin.Context) {
	index, ok := semesterIndex(c)
	if !ok {
		return
	}

	err := h.recordService.DeleteSemester(c.Request.Context(), index)
	respond(c, http.StatusOK, "Semester deleted", gin.H{"current": h.recordService.Current()}, err)
}

// SelectSemester handles POST /semesters/:index/select
func (h *RecordHandler) SelectSemester(c *gin.Context) {
	index, ok := semesterIndex(c)
	if !ok {
		return
	}

	err := h.recordService.Select(index)
	respond(c, http.StatusOK, "Semester selected", gin.H{"current": index}, err)
}

// AddCourse handles POST /semesters/:index/courses
func (h *RecordHandler) AddCourse(c *gin.Context) {
	index, ok := semesterIndex(c)
	if !ok {
		return
	}
	var req validator.AddCourseRequest
	if !bindAndValidate(c, &req) {
		return
	}

	course, err := h.recordService.AddCourse(c.Request.Context(), index, req.Name, req.Grade, req.Credits)
	respond(c, http.StatusCreated, "Course added", course, err)
}

// RemoveCourse handles DELETE /semesters/:index/courses/:courseId
func (h *RecordHandler) RemoveCourse(c *gin.Context) {
	index, ok := semesterIndex(c)
	if !ok {
		return
	}
	courseID, err := strconv.ParseInt(c.Param("courseId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid course ID format",
		})
		return
	}

	removed, err := h.recordService.RemoveCourse(c.Request.Context(), index, courseID)
	if err == nil && !removed {
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Message: "Course not found",
		})
		return
	}
	respond(c, http.StatusOK, "Course removed", nil, err)
}

// PlanTarget handles POST /plan
func (h *RecordHandler) PlanTarget(c *gin.Context) {
	var req validator.PlanRequest
	if !bindAndValidate(c, &req) {
		return
	}

	targetGPA, targetCredits, err := academic.ParseTarget(req.TargetGPA, req.TargetCredits)
	if err != nil {
		respond(c, http.StatusOK, "", nil, err)
		return
	}
	plan, err := h.recordService.PlanTarget(targetGPA, targetCredits)
	respond(c, http.StatusOK, plan.Message, plan, err)
}

// Export handles GET /export and returns the plain-text summary
func (h *RecordHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := h.recordService.Export(c.Request.Context(), share.NewWriterSharer(&buf)); err != nil {
		logger.Error("Export failed: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Export failed",
		})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// ClearAll handles POST /clear
func (h *RecordHandler) ClearAll(c *gin.Context) {
	sem, err := h.recordService.ClearAll(c.Request.Context())
	respond(c, http.StatusOK, "All data cleared", sem, err)
}

func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return false
	}

	if err := validator.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return false
	}
	return true
}

func semesterIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid semester index",
		})
		return 0, false
	}
	return index, true
}

// respond writes data with status, or maps err onto the response. A
// persistence failure still reports success with a warning because the
// change has been applied.
func respond(c *gin.Context, status int, message string, data interface{}, err error) {
	var validationErr *academic.ValidationError
	var persistenceErr *service.PersistenceError

	switch {
	case err == nil:
		c.JSON(status, APIResponse{Success: true, Message: message, Data: data})
	case errors.As(err, &validationErr):
		code := http.StatusBadRequest
		if validationErr.Field == "semester" {
			code = http.StatusNotFound
		}
		c.JSON(code, APIResponse{
			Success: false,
			Message: validationErr.Message,
			Errors:  []validator.ValidationError{{Field: validationErr.Field, Message: validationErr.Message}},
		})
	case errors.As(err, &persistenceErr):
		c.JSON(status, APIResponse{Success: true, Message: message, Data: data, Warning: persistenceErr.Error()})
	default:
		logger.Error("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Internal server error",
		})
	}
}
