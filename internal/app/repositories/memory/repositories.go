package memory

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

// Repositories bundles the in-memory storage adapters.
type Repositories struct {
	Students      *StudentRepository
	Instructors   *InstructorRepository
	Courses       *CourseRepository
	ScheduleSlots *ScheduleSlotRepository
	Assignments   *AssignmentRepository
}

// NewRepositories creates an empty in-memory backend.
func NewRepositories() *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(),
		Instructors:   NewInstructorRepository(),
		Courses:       NewCourseRepository(),
		ScheduleSlots: NewScheduleSlotRepository(),
		Assignments:   NewAssignmentRepository(),
	}
}

// StudentRepository stores students in memory.
type StudentRepository struct {
	t *table[models.Student]
}

// NewStudentRepository creates an empty student store.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{t: newTable(
		func(s *models.Student) int64 { return s.ID },
		func(s *models.Student, id int64) { s.ID = id },
		func(s *models.Student) map[string]any {
			return map[string]any{
				"id":             s.ID,
				"student_number": s.StudentNumber,
				"name":           s.Name,
				"class_group":    s.ClassGroup,
				"birth_place":    s.BirthPlace,
				"birth_date":     s.BirthDate,
				"status":         string(s.Status),
			}
		},
	)}
}

// Create stores the student and assigns its id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.t.insert(student)
	return nil
}

// List returns the students matching the descriptor.
func (r *StudentRepository) List(ctx context.Context, q query.StudentQuery) ([]models.Student, error) {
	return r.t.list(q.Spec()), nil
}

// Update replaces the stored student with the same id.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if !r.t.replace(student) {
		return apperrors.NewNotFound("student", student.ID)
	}
	return nil
}

// InstructorRepository stores instructors in memory.
type InstructorRepository struct {
	t *table[models.Instructor]
}

// NewInstructorRepository creates an empty instructor store.
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{t: newTable(
		func(i *models.Instructor) int64 { return i.ID },
		func(i *models.Instructor, id int64) { i.ID = id },
		func(i *models.Instructor) map[string]any {
			return map[string]any{
				"id":        i.ID,
				"id_number": i.IDNumber,
				"name":      i.Name,
				"email":     i.Email,
				"status":    string(i.Status),
			}
		},
	)}
}

// Create stores the instructor and assigns its id.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	r.t.insert(instructor)
	return nil
}

// List returns the instructors matching the descriptor.
func (r *InstructorRepository) List(ctx context.Context, q query.InstructorQuery) ([]models.Instructor, error) {
	return r.t.list(q.Spec()), nil
}

// Update replaces the stored instructor with the same id.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	if !r.t.replace(instructor) {
		return apperrors.NewNotFound("instructor", instructor.ID)
	}
	return nil
}

// CourseRepository stores courses in memory.
type CourseRepository struct {
	t *table[models.Course]
}

// NewCourseRepository creates an empty course store.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{t: newTable(
		func(c *models.Course) int64 { return c.ID },
		func(c *models.Course, id int64) { c.ID = id },
		func(c *models.Course) map[string]any {
			return map[string]any{
				"id":        c.ID,
				"code":      c.Code,
				"name":      c.Name,
				"credits":   c.Credits,
				"is_active": c.IsActive,
			}
		},
	)}
}

// Create stores the course and assigns its id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	r.t.insert(course)
	return nil
}

// List returns the courses matching the descriptor.
func (r *CourseRepository) List(ctx context.Context, q query.CourseQuery) ([]models.Course, error) {
	return r.t.list(q.Spec()), nil
}

// Update replaces the stored course with the same id.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	if !r.t.replace(course) {
		return apperrors.NewNotFound("course", course.ID)
	}
	return nil
}

// Delete removes the stored course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	if !r.t.remove(id) {
		return apperrors.NewNotFound("course", id)
	}
	return nil
}

// ScheduleSlotRepository stores schedule slots in memory.
type ScheduleSlotRepository struct {
	t *table[models.ScheduleSlot]
}

// NewScheduleSlotRepository creates an empty schedule slot store.
func NewScheduleSlotRepository() *ScheduleSlotRepository {
	return &ScheduleSlotRepository{t: newTable(
		func(s *models.ScheduleSlot) int64 { return s.ID },
		func(s *models.ScheduleSlot, id int64) { s.ID = id },
		func(s *models.ScheduleSlot) map[string]any {
			return map[string]any{
				"id":            s.ID,
				"day":           s.Day,
				"start_time":    s.StartTime,
				"end_time":      s.EndTime,
				"room":          s.Room,
				"course_id":     s.CourseID,
				"instructor_id": s.InstructorID,
				"is_active":     s.IsActive,
			}
		},
	)}
}

// Create stores the slot and assigns its id.
func (r *ScheduleSlotRepository) Create(ctx context.Context, slot *models.ScheduleSlot) error {
	r.t.insert(slot)
	return nil
}

// List returns the slots matching the descriptor.
func (r *ScheduleSlotRepository) List(ctx context.Context, q query.ScheduleSlotQuery) ([]models.ScheduleSlot, error) {
	return r.t.list(q.Spec()), nil
}

// Update replaces the stored slot with the same id.
func (r *ScheduleSlotRepository) Update(ctx context.Context, slot *models.ScheduleSlot) error {
	if !r.t.replace(slot) {
		return apperrors.NewNotFound("schedule slot", slot.ID)
	}
	return nil
}

// AssignmentRepository stores assignments in memory.
type AssignmentRepository struct {
	t *table[models.Assignment]
}

// NewAssignmentRepository creates an empty assignment store.
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{t: newTable(
		func(a *models.Assignment) int64 { return a.ID },
		func(a *models.Assignment, id int64) { a.ID = id },
		func(a *models.Assignment) map[string]any {
			return map[string]any{
				"id":         a.ID,
				"title":      a.Title,
				"due_date":   a.DueDate,
				"status":     string(a.Status),
				"course_id":  a.CourseID,
				"student_id": a.StudentID,
			}
		},
	)}
}

// Create stores the assignment and assigns its id.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	r.t.insert(assignment)
	return nil
}

// List returns the assignments matching the descriptor.
func (r *AssignmentRepository) List(ctx context.Context, q query.AssignmentQuery) ([]models.Assignment, error) {
	return r.t.list(q.Spec()), nil
}

// Update replaces the stored assignment with the same id.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	if !r.t.replace(assignment) {
		return apperrors.NewNotFound("assignment", assignment.ID)
	}
	return nil
}
