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

// ScheduleSlotController handles timetable slot endpoints
type ScheduleSlotController struct {
	slotService *services.ScheduleSlotService
}

// NewScheduleSlotController creates a new ScheduleSlotController
func NewScheduleSlotController(slotService *services.ScheduleSlotService) *ScheduleSlotController {
	return &ScheduleSlotController{slotService: slotService}
}

// CreateScheduleSlot handles slot creation
// @Summary Create a new schedule slot
// @Description Registers a timetable slot; start time must precede end time
// @Tags schedule-slots
// @Accept json
// @Produce json
// @Param request body models.ScheduleSlot true "Schedule slot information"
// @Success 201 {object} dto.APIResponse{data=models.ScheduleSlot} "Schedule slot created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule slot data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule-slots [post]
func (c *ScheduleSlotController) CreateScheduleSlot(ctx *gin.Context) {
	var slot models.ScheduleSlot
	if err := ctx.ShouldBindJSON(&slot); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.slotService.Create(ctx, &slot)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// ListScheduleSlots retrieves slots with optional filters
// @Summary List schedule slots
// @Description Retrieves timetable slots filtered, ordered and paginated by the query parameters
// @Tags schedule-slots
// @Accept json
// @Produce json
// @Param day query string false "Day substring (case-insensitive)"
// @Param room query string false "Room substring (case-insensitive)"
// @Param start_time query string false "Exact start time (HH:MM)"
// @Param end_time query string false "Exact end time (HH:MM)"
// @Param course_id query int false "Exact course id"
// @Param instructor_id query int false "Exact instructor id"
// @Param is_active query bool false "Active flag"
// @Param order_by query string false "Order column"
// @Param order query string false "asc or desc"
// @Param limit query int false "Maximum records to return"
// @Param page query int false "1-based page, effective with limit"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleSlot} "Schedule slots retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule-slots [get]
func (c *ScheduleSlotController) ListScheduleSlots(ctx *gin.Context) {
	var q query.ScheduleSlotQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	slots, err := c.slotService.List(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slots,
		Timestamp: time.Now(),
	})
}

// UpdateScheduleSlot updates an existing slot
// @Summary Update a schedule slot
// @Description Fully replaces the slot's fields; the id never changes
// @Tags schedule-slots
// @Accept json
// @Produce json
// @Param id path int true "Schedule slot ID"
// @Param request body models.ScheduleSlot true "Replacement schedule slot information"
// @Success 200 {object} dto.APIResponse{data=models.ScheduleSlot} "Schedule slot updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule slot data"
// @Failure 404 {object} dto.ErrorResponse "Schedule slot not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule-slots/{id} [put]
func (c *ScheduleSlotController) UpdateScheduleSlot(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule slot ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var slot models.ScheduleSlot
	if err := ctx.ShouldBindJSON(&slot); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	slot.ID = id
	updated, err := c.slotService.Update(ctx, &slot)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeleteScheduleSlot deactivates a slot
// @Summary Delete a schedule slot
// @Description Marks the slot inactive; repeating the call succeeds
// @Tags schedule-slots
// @Accept json
// @Produce json
// @Param id path int true "Schedule slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Schedule slot deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule slot ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule slot not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule-slots/{id} [delete]
func (c *ScheduleSlotController) DeleteScheduleSlot(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule slot ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.slotService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Schedule slot deleted successfully"},
		Timestamp: time.Now(),
	})
}
