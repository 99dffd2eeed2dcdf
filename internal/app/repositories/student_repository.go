package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
	"github.com/derya/campusreg/internal/pkg/dberrors"
)

var studentSelectColumns = []string{"id", "student_number", "name", "class_group", "birth_place", "birth_date", "status"}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and assigns its id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql := `
		INSERT INTO students (student_number, name, class_group, birth_place, birth_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		student.StudentNumber,
		student.Name,
		student.ClassGroup,
		student.BirthPlace,
		student.BirthDate,
		string(student.Status),
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntry("student", "student_number", student.StudentNumber)
		}
		return apperrors.NewStorage("insert student", err)
	}

	return nil
}

// List returns the students matching the descriptor, ordered and paginated.
func (r *StudentRepository) List(ctx context.Context, q query.StudentQuery) ([]models.Student, error) {
	sql, args := q.Spec().SelectSQL("students", studentSelectColumns)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStorage("select students", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		var status string
		if err := rows.Scan(
			&student.ID,
			&student.StudentNumber,
			&student.Name,
			&student.ClassGroup,
			&student.BirthPlace,
			&student.BirthDate,
			&status,
		); err != nil {
			return nil, apperrors.NewStorage("scan student", err)
		}
		student.Status = models.StudentStatus(status)
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("select students", err)
	}

	return students, nil
}

// Update replaces all fields of the student identified by its id.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql := `
		UPDATE students
		SET student_number = $1, name = $2, class_group = $3, birth_place = $4, birth_date = $5, status = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, sql,
		student.StudentNumber,
		student.Name,
		student.ClassGroup,
		student.BirthPlace,
		student.BirthDate,
		string(student.Status),
		student.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateEntry("student", "student_number", student.StudentNumber)
		}
		return apperrors.NewStorage("update student", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("student", student.ID)
	}

	return nil
}
