// Package seed populates an empty installation with a small demo data
// set so the API is explorable right after startup.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/app/services"
)

// Services are the service-layer entry points the seeder writes through,
// so the demo data passes the same validation as API requests.
type Services struct {
	Students      *services.StudentService
	Instructors   *services.InstructorService
	Courses       *services.CourseService
	ScheduleSlots *services.ScheduleSlotService
	Assignments   *services.AssignmentService
}

// CreateDemoData inserts the demo records when the student table is
// empty. A non-empty installation is left untouched.
func CreateDemoData(ctx context.Context, svc Services, lgr zerolog.Logger) error {
	existing, err := svc.Students.List(ctx, query.StudentQuery{ListParams: query.ListParams{Limit: 1}})
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Demo data skipped, records already present")
		return nil
	}

	students := []models.Student{
		{StudentNumber: "2301001", Name: "Ayse Demir", ClassGroup: "A", BirthPlace: "Ankara", BirthDate: date(2004, 3, 12)},
		{StudentNumber: "2301002", Name: "Mehmet Kaya", ClassGroup: "A", BirthPlace: "Izmir", BirthDate: date(2003, 11, 2)},
		{StudentNumber: "2301003", Name: "Elif Aksoy", ClassGroup: "B", BirthPlace: "Istanbul", BirthDate: date(2004, 7, 25)},
	}
	for i := range students {
		if _, err := svc.Students.Create(ctx, &students[i]); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", students[i].StudentNumber, err)
		}
	}

	instructors := []models.Instructor{
		{IDNumber: "198703011", Name: "Dr. Zeynep Arslan", Email: "zeynep.arslan@example.edu"},
		{IDNumber: "199104022", Name: "Dr. Can Yildiz", Email: "can.yildiz@example.edu"},
	}
	for i := range instructors {
		if _, err := svc.Instructors.Create(ctx, &instructors[i]); err != nil {
			return fmt.Errorf("failed to seed instructor %s: %w", instructors[i].IDNumber, err)
		}
	}

	courses := []models.Course{
		{Code: "CS101", Name: "Introduction to Programming", Credits: 4},
		{Code: "MA201", Name: "Linear Algebra", Credits: 3},
	}
	for i := range courses {
		if _, err := svc.Courses.Create(ctx, &courses[i]); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", courses[i].Code, err)
		}
	}

	slots := []models.ScheduleSlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:40", Room: "B-204", CourseID: courses[0].ID, InstructorID: instructors[0].ID},
		{Day: "Wednesday", StartTime: "13:00", EndTime: "14:40", Room: "A-101", CourseID: courses[1].ID, InstructorID: instructors[1].ID},
	}
	for i := range slots {
		if _, err := svc.ScheduleSlots.Create(ctx, &slots[i]); err != nil {
			return fmt.Errorf("failed to seed schedule slot: %w", err)
		}
	}

	assignments := []models.Assignment{
		{Title: "Problem set 1", Description: "Variables and control flow", DueDate: time.Now().AddDate(0, 0, 14), CourseID: &courses[0].ID, StudentID: &students[0].ID},
		{Title: "Matrix exercises", Description: "Chapters 2 and 3", DueDate: time.Now().AddDate(0, 0, 21), CourseID: &courses[1].ID, StudentID: &students[1].ID},
	}
	for i := range assignments {
		if _, err := svc.Assignments.Create(ctx, &assignments[i]); err != nil {
			return fmt.Errorf("failed to seed assignment %s: %w", assignments[i].Title, err)
		}
	}

	lgr.Info().
		Int("students", len(students)).
		Int("instructors", len(instructors)).
		Int("courses", len(courses)).
		Msg("Demo data created")
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
