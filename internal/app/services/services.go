// Package services holds the entity services: validation against the
// lifecycle policy, natural-key duplicate checks through the query engine,
// and policy-driven removal. This is the only business-logic layer; the
// HTTP controllers above and the storage adapters below stay thin.
package services

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
)

// Storage adapter contracts. Both the PostgreSQL and the in-memory backend
// implement these; services never see a concrete backend.

// StudentRepository is the storage adapter for students.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context, q query.StudentQuery) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
}

// InstructorRepository is the storage adapter for instructors.
type InstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	List(ctx context.Context, q query.InstructorQuery) ([]models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
}

// CourseRepository is the storage adapter for courses. Courses are the only
// hard-delete entity, so only this contract has Delete.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context, q query.CourseQuery) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleSlotRepository is the storage adapter for schedule slots.
type ScheduleSlotRepository interface {
	Create(ctx context.Context, slot *models.ScheduleSlot) error
	List(ctx context.Context, q query.ScheduleSlotQuery) ([]models.ScheduleSlot, error)
	Update(ctx context.Context, slot *models.ScheduleSlot) error
}

// AssignmentRepository is the storage adapter for assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	List(ctx context.Context, q query.AssignmentQuery) ([]models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
}
