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

// InstructorController handles instructor record endpoints
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{instructorService: instructorService}
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Description Registers an instructor record; id number and email must be unique
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body models.Instructor true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=models.Instructor} "Instructor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor data"
// @Failure 409 {object} dto.ErrorResponse "ID number or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var instructor models.Instructor
	if err := ctx.ShouldBindJSON(&instructor); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.instructorService.Create(ctx, &instructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// ListInstructors retrieves instructors with optional filters
// @Summary List instructors
// @Description Retrieves instructors filtered, ordered and paginated by the query parameters
// @Tags instructors
// @Accept json
// @Produce json
// @Param id_number query string false "Exact staff id number"
// @Param name query string false "Name substring (case-insensitive)"
// @Param email query string false "Email substring (case-insensitive)"
// @Param status query string false "Exact status"
// @Param order_by query string false "Order column"
// @Param order query string false "asc or desc"
// @Param limit query int false "Maximum records to return"
// @Param page query int false "1-based page, effective with limit"
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor} "Instructors retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [get]
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	var q query.InstructorQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	instructors, err := c.instructorService.List(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// UpdateInstructor updates an existing instructor
// @Summary Update an instructor
// @Description Fully replaces the instructor's fields; the id never changes
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Param request body models.Instructor true "Replacement instructor information"
// @Success 200 {object} dto.APIResponse{data=models.Instructor} "Instructor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor data"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 409 {object} dto.ErrorResponse "ID number or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var instructor models.Instructor
	if err := ctx.ShouldBindJSON(&instructor); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	instructor.ID = id
	updated, err := c.instructorService.Update(ctx, &instructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeleteInstructor removes an instructor per the lifecycle policy
// @Summary Delete an instructor
// @Description Transitions the instructor to inactive; repeating the call succeeds
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Instructor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.instructorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Instructor deleted successfully"},
		Timestamp: time.Now(),
	})
}
