package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

var assignmentSelectColumns = []string{"id", "title", "description", "due_date", "status", "course_id", "student_id"}

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment and assigns its id.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	sql := `
		INSERT INTO assignments (title, description, due_date, status, course_id, student_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		string(assignment.Status),
		assignment.CourseID,
		assignment.StudentID,
	).Scan(&assignment.ID)
	if err != nil {
		return apperrors.NewStorage("insert assignment", err)
	}

	return nil
}

// List returns the assignments matching the descriptor.
func (r *AssignmentRepository) List(ctx context.Context, q query.AssignmentQuery) ([]models.Assignment, error) {
	sql, args := q.Spec().SelectSQL("assignments", assignmentSelectColumns)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStorage("select assignments", err)
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		var assignment models.Assignment
		var status string
		if err := rows.Scan(
			&assignment.ID,
			&assignment.Title,
			&assignment.Description,
			&assignment.DueDate,
			&status,
			&assignment.CourseID,
			&assignment.StudentID,
		); err != nil {
			return nil, apperrors.NewStorage("scan assignment", err)
		}
		assignment.Status = models.AssignmentStatus(status)
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("select assignments", err)
	}

	return assignments, nil
}

// Update replaces all fields of the assignment identified by its id.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	sql := `
		UPDATE assignments
		SET title = $1, description = $2, due_date = $3, status = $4, course_id = $5, student_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, sql,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		string(assignment.Status),
		assignment.CourseID,
		assignment.StudentID,
		assignment.ID,
	)
	if err != nil {
		return apperrors.NewStorage("update assignment", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("assignment", assignment.ID)
	}

	return nil
}
