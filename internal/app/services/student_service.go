package services

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/policy"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

// StudentService handles student record operations
type StudentService struct {
	repo StudentRepository
	rule policy.Rule
}

// NewStudentService creates a new student service instance
func NewStudentService(repo StudentRepository) *StudentService {
	return &StudentService{
		repo: repo,
		rule: policy.For(policy.EntityStudent),
	}
}

func (s *StudentService) validate(student *models.Student) error {
	err := s.rule.CheckRequired(map[string]string{
		"student_number": student.StudentNumber,
		"name":           student.Name,
	})
	if err != nil {
		return err
	}

	if student.Status == "" {
		student.Status = models.StudentStatus(s.rule.DefaultStatus)
	}
	if !student.Status.Valid() {
		return apperrors.NewInvalidInputf("unknown student status %q", student.Status)
	}

	return nil
}

// Create validates the student, checks the student-number natural key and
// persists the record. The assigned id is set on the returned entity.
func (s *StudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validate(student); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.StudentQuery{StudentNumber: &student.StudentNumber})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewDuplicateEntry(s.rule.Entity, "student_number", student.StudentNumber)
	}

	student.ID = 0
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// List returns the students matching the descriptor. An empty result is not
// an error.
func (s *StudentService) List(ctx context.Context, q query.StudentQuery) ([]models.Student, error) {
	return s.repo.List(ctx, q)
}

// Update fully replaces the student identified by its id, re-checking the
// natural key when it changed.
func (s *StudentService) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validate(student); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.StudentQuery{ID: &student.ID})
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, apperrors.NewNotFound(s.rule.Entity, student.ID)
	}

	if student.StudentNumber != existing[0].StudentNumber {
		conflicts, err := s.repo.List(ctx, query.StudentQuery{StudentNumber: &student.StudentNumber})
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, apperrors.NewDuplicateEntry(s.rule.Entity, "student_number", student.StudentNumber)
		}
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete transitions the student to the terminal drop_out status. Deleting
// an already dropped-out student succeeds without another write.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.List(ctx, query.StudentQuery{ID: &id})
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return apperrors.NewNotFound(s.rule.Entity, id)
	}

	student := existing[0]
	if student.Status == models.StudentStatus(s.rule.TerminalStatus) {
		return nil
	}

	student.Status = models.StudentStatus(s.rule.TerminalStatus)
	return s.repo.Update(ctx, &student)
}
