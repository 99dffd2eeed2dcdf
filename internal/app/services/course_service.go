package services

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/policy"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

// CourseService handles course catalog operations
type CourseService struct {
	repo CourseRepository
	rule policy.Rule
}

// NewCourseService creates a new course service instance
func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{
		repo: repo,
		rule: policy.For(policy.EntityCourse),
	}
}

func (s *CourseService) validate(course *models.Course) error {
	err := s.rule.CheckRequired(map[string]string{
		"code": course.Code,
		"name": course.Name,
	})
	if err != nil {
		return err
	}

	if course.Credits <= 0 {
		return apperrors.NewInvalidInput("credits must be greater than 0")
	}

	return nil
}

// Create validates the course, checks the course-code natural key and
// persists the record. New courses always start active.
func (s *CourseService) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validate(course); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.CourseQuery{Code: &course.Code})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewDuplicateEntry(s.rule.Entity, "code", course.Code)
	}

	course.ID = 0
	course.IsActive = true
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// List returns the courses matching the descriptor.
func (s *CourseService) List(ctx context.Context, q query.CourseQuery) ([]models.Course, error) {
	return s.repo.List(ctx, q)
}

// Update fully replaces the course identified by its id, re-checking the
// code when it changed.
func (s *CourseService) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validate(course); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.CourseQuery{ID: &course.ID})
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, apperrors.NewNotFound(s.rule.Entity, course.ID)
	}

	if course.Code != existing[0].Code {
		conflicts, err := s.repo.List(ctx, query.CourseQuery{Code: &course.Code})
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, apperrors.NewDuplicateEntry(s.rule.Entity, "code", course.Code)
		}
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes the course record. Course removal is destructive: the
// row is gone and the code can be registered again.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.List(ctx, query.CourseQuery{ID: &id})
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return apperrors.NewNotFound(s.rule.Entity, id)
	}

	return s.repo.Delete(ctx, id)
}
