package services

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/policy"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

// AssignmentService handles assignment operations
type AssignmentService struct {
	repo AssignmentRepository
	rule policy.Rule
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(repo AssignmentRepository) *AssignmentService {
	return &AssignmentService{
		repo: repo,
		rule: policy.For(policy.EntityAssignment),
	}
}

func (s *AssignmentService) validate(assignment *models.Assignment) error {
	err := s.rule.CheckRequired(map[string]string{
		"title": assignment.Title,
	})
	if err != nil {
		return err
	}

	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatus(s.rule.DefaultStatus)
	}
	if !assignment.Status.Valid() {
		return apperrors.NewInvalidInputf("unknown assignment status %q", assignment.Status)
	}

	return nil
}

// Create validates the assignment and persists it. Assignments have no
// natural key, so there is no duplicate check.
func (s *AssignmentService) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	if err := s.validate(assignment); err != nil {
		return nil, err
	}

	assignment.ID = 0
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// List returns the assignments matching the descriptor.
func (s *AssignmentService) List(ctx context.Context, q query.AssignmentQuery) ([]models.Assignment, error) {
	return s.repo.List(ctx, q)
}

// Update fully replaces the assignment identified by its id.
func (s *AssignmentService) Update(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	if err := s.validate(assignment); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.AssignmentQuery{ID: &assignment.ID})
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, apperrors.NewNotFound(s.rule.Entity, assignment.ID)
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Delete transitions the assignment to the terminal cancelled status,
// idempotently.
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.List(ctx, query.AssignmentQuery{ID: &id})
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return apperrors.NewNotFound(s.rule.Entity, id)
	}

	assignment := existing[0]
	if assignment.Status == models.AssignmentStatus(s.rule.TerminalStatus) {
		return nil
	}

	assignment.Status = models.AssignmentStatus(s.rule.TerminalStatus)
	return s.repo.Update(ctx, &assignment)
}
