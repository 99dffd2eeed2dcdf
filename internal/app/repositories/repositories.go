package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles the PostgreSQL storage adapters.
type Repositories struct {
	Students      *StudentRepository
	Instructors   *InstructorRepository
	Courses       *CourseRepository
	ScheduleSlots *ScheduleSlotRepository
	Assignments   *AssignmentRepository
}

// NewRepositories creates all repositories over the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(db),
		Instructors:   NewInstructorRepository(db),
		Courses:       NewCourseRepository(db),
		ScheduleSlots: NewScheduleSlotRepository(db),
		Assignments:   NewAssignmentRepository(db),
	}
}
