package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
	"github.com/derya/campusreg/internal/pkg/dberrors"
)

var courseSelectColumns = []string{"id", "code", "name", "credits", "is_active"}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course and assigns its id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql := `
		INSERT INTO courses (code, name, credits, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		course.Code,
		course.Name,
		course.Credits,
		course.IsActive,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntry("course", "code", course.Code)
		}
		return apperrors.NewStorage("insert course", err)
	}

	return nil
}

// List returns the courses matching the descriptor.
func (r *CourseRepository) List(ctx context.Context, q query.CourseQuery) ([]models.Course, error) {
	sql, args := q.Spec().SelectSQL("courses", courseSelectColumns)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStorage("select courses", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Credits,
			&course.IsActive,
		); err != nil {
			return nil, apperrors.NewStorage("scan course", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("select courses", err)
	}

	return courses, nil
}

// Update replaces all fields of the course identified by its id.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql := `
		UPDATE courses
		SET code = $1, name = $2, credits = $3, is_active = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, sql,
		course.Code,
		course.Name,
		course.Credits,
		course.IsActive,
		course.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntry("course", "code", course.Code)
		}
		return apperrors.NewStorage("update course", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("course", course.ID)
	}

	return nil
}

// Delete removes the course row. Course removal is destructive by policy.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStorage("delete course", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("course", id)
	}

	return nil
}
