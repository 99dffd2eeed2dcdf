package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/models/dto"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/app/services"
	"github.com/derya/campusreg/internal/middleware"
)

// AssignmentController handles assignment endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// CreateAssignment handles assignment creation
// @Summary Create a new assignment
// @Description Registers an assignment; status defaults to pending when omitted
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body models.Assignment true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var assignment models.Assignment
	if err := ctx.ShouldBindJSON(&assignment); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.assignmentService.Create(ctx, &assignment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// ListAssignments retrieves assignments with optional filters
// @Summary List assignments
// @Description Retrieves assignments filtered, ordered and paginated by the query parameters
// @Tags assignments
// @Accept json
// @Produce json
// @Param title query string false "Title substring (case-insensitive)"
// @Param status query string false "Exact status"
// @Param course_id query int false "Exact course id"
// @Param student_id query int false "Exact student id"
// @Param due_from query string false "Due date lower bound (RFC 3339)"
// @Param due_to query string false "Due date upper bound (RFC 3339)"
// @Param order_by query string false "Order column"
// @Param order query string false "asc or desc"
// @Param limit query int false "Maximum records to return"
// @Param page query int false "1-based page, effective with limit"
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment} "Assignments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	var q query.AssignmentQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	assignments, err := c.assignmentService.List(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assignments,
		Timestamp: time.Now(),
	})
}

// UpdateAssignment updates an existing assignment
// @Summary Update an assignment
// @Description Fully replaces the assignment's fields; the id never changes
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param request body models.Assignment true "Replacement assignment information"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var assignment models.Assignment
	if err := ctx.ShouldBindJSON(&assignment); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	assignment.ID = id
	updated, err := c.assignmentService.Update(ctx, &assignment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeleteAssignment cancels an assignment
// @Summary Delete an assignment
// @Description Transitions the assignment to cancelled; repeating the call succeeds
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.assignmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assignment deleted successfully"},
		Timestamp: time.Now(),
	})
}
