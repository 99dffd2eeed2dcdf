package repositories

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
	"github.com/derya/campusreg/internal/pkg/dberrors"
)

var instructorSelectColumns = []string{"id", "id_number", "name", "email", "status"}

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// instructorConflictField maps a unique-constraint violation to the natural
// key that caused it. Instructors carry two.
func instructorConflictField(err error, instructor *models.Instructor) (string, string) {
	if strings.Contains(dberrors.ConstraintName(err), "email") {
		return "email", instructor.Email
	}
	return "id_number", instructor.IDNumber
}

// Create inserts a new instructor and assigns its id.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	sql := `
		INSERT INTO instructors (id_number, name, email, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		instructor.IDNumber,
		instructor.Name,
		instructor.Email,
		string(instructor.Status),
	).Scan(&instructor.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			field, value := instructorConflictField(err, instructor)
			return apperrors.NewDuplicateEntry("instructor", field, value)
		}
		return apperrors.NewStorage("insert instructor", err)
	}

	return nil
}

// List returns the instructors matching the descriptor.
func (r *InstructorRepository) List(ctx context.Context, q query.InstructorQuery) ([]models.Instructor, error) {
	sql, args := q.Spec().SelectSQL("instructors", instructorSelectColumns)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStorage("select instructors", err)
	}
	defer rows.Close()

	instructors := []models.Instructor{}
	for rows.Next() {
		var instructor models.Instructor
		var status string
		if err := rows.Scan(
			&instructor.ID,
			&instructor.IDNumber,
			&instructor.Name,
			&instructor.Email,
			&status,
		); err != nil {
			return nil, apperrors.NewStorage("scan instructor", err)
		}
		instructor.Status = models.InstructorStatus(status)
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("select instructors", err)
	}

	return instructors, nil
}

// Update replaces all fields of the instructor identified by its id.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	sql := `
		UPDATE instructors
		SET id_number = $1, name = $2, email = $3, status = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, sql,
		instructor.IDNumber,
		instructor.Name,
		instructor.Email,
		string(instructor.Status),
		instructor.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			field, value := instructorConflictField(err, instructor)
			return apperrors.NewDuplicateEntry("instructor", field, value)
		}
		return apperrors.NewStorage("update instructor", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("instructor", instructor.ID)
	}

	return nil
}
