package services

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/policy"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

// InstructorService handles instructor record operations
type InstructorService struct {
	repo InstructorRepository
	rule policy.Rule
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(repo InstructorRepository) *InstructorService {
	return &InstructorService{
		repo: repo,
		rule: policy.For(policy.EntityInstructor),
	}
}

func (s *InstructorService) validate(instructor *models.Instructor) error {
	err := s.rule.CheckRequired(map[string]string{
		"id_number": instructor.IDNumber,
		"name":      instructor.Name,
		"email":     instructor.Email,
	})
	if err != nil {
		return err
	}

	if instructor.Status == "" {
		instructor.Status = models.InstructorStatus(s.rule.DefaultStatus)
	}
	if !instructor.Status.Valid() {
		return apperrors.NewInvalidInputf("unknown instructor status %q", instructor.Status)
	}

	return nil
}

// naturalKeys lists the instructor's unique fields in policy order together
// with a probe descriptor for each.
func (s *InstructorService) naturalKeys(instructor *models.Instructor) map[string]struct {
	value string
	probe query.InstructorQuery
} {
	return map[string]struct {
		value string
		probe query.InstructorQuery
	}{
		"id_number": {instructor.IDNumber, query.InstructorQuery{IDNumber: &instructor.IDNumber}},
		"email":     {instructor.Email, query.InstructorQuery{Email: &instructor.Email}},
	}
}

// Create validates the instructor, checks both natural keys (id number and
// email) and persists the record.
func (s *InstructorService) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if err := s.validate(instructor); err != nil {
		return nil, err
	}

	keys := s.naturalKeys(instructor)
	for _, field := range s.rule.Unique {
		key := keys[field]
		existing, err := s.repo.List(ctx, key.probe)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, apperrors.NewDuplicateEntry(s.rule.Entity, field, key.value)
		}
	}

	instructor.ID = 0
	if err := s.repo.Create(ctx, instructor); err != nil {
		return nil, err
	}

	return instructor, nil
}

// List returns the instructors matching the descriptor.
func (s *InstructorService) List(ctx context.Context, q query.InstructorQuery) ([]models.Instructor, error) {
	return s.repo.List(ctx, q)
}

// Update fully replaces the instructor identified by its id, re-checking
// each natural key whose value changed.
func (s *InstructorService) Update(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if err := s.validate(instructor); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.InstructorQuery{ID: &instructor.ID})
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, apperrors.NewNotFound(s.rule.Entity, instructor.ID)
	}

	stored := map[string]string{
		"id_number": existing[0].IDNumber,
		"email":     existing[0].Email,
	}

	keys := s.naturalKeys(instructor)
	for _, field := range s.rule.Unique {
		key := keys[field]
		if key.value == stored[field] {
			continue
		}
		conflicts, err := s.repo.List(ctx, key.probe)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, apperrors.NewDuplicateEntry(s.rule.Entity, field, key.value)
		}
	}

	if err := s.repo.Update(ctx, instructor); err != nil {
		return nil, err
	}

	return instructor, nil
}

// Delete transitions the instructor to the terminal inactive status,
// idempotently.
func (s *InstructorService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.List(ctx, query.InstructorQuery{ID: &id})
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return apperrors.NewNotFound(s.rule.Entity, id)
	}

	instructor := existing[0]
	if instructor.Status == models.InstructorStatus(s.rule.TerminalStatus) {
		return nil
	}

	instructor.Status = models.InstructorStatus(s.rule.TerminalStatus)
	return s.repo.Update(ctx, &instructor)
}
