package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/derya/campusreg/internal/app/controllers"
	"github.com/derya/campusreg/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
	scheduleSlotController *controllers.ScheduleSlotController,
	assignmentController *controllers.AssignmentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.ListStudents)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.POST("", instructorController.CreateInstructor)
		instructors.GET("", instructorController.ListInstructors)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.ListCourses)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	scheduleSlots := v1.Group("/schedule-slots")
	{
		scheduleSlots.POST("", scheduleSlotController.CreateScheduleSlot)
		scheduleSlots.GET("", scheduleSlotController.ListScheduleSlots)
		scheduleSlots.PUT("/:id", scheduleSlotController.UpdateScheduleSlot)
		scheduleSlots.DELETE("/:id", scheduleSlotController.DeleteScheduleSlot)
	}

	assignments := v1.Group("/assignments")
	{
		assignments.POST("", assignmentController.CreateAssignment)
		assignments.GET("", assignmentController.ListAssignments)
		assignments.PUT("/:id", assignmentController.UpdateAssignment)
		assignments.DELETE("/:id", assignmentController.DeleteAssignment)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
