package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/app/repositories/memory"
	"github.com/derya/campusreg/internal/app/services"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

func newCourseService() *services.CourseService {
	return services.NewCourseService(memory.NewCourseRepository())
}

func mustCreateCourse(t *testing.T, svc *services.CourseService, code, name string, credits int) *models.Course {
	t.Helper()
	course := &models.Course{Code: code, Name: name, Credits: credits}
	created, err := svc.Create(context.Background(), course)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", code, err)
	}
	return created
}

func TestCourseCreateStartsActive(t *testing.T) {
	svc := newCourseService()

	created := mustCreateCourse(t, svc, "CS101", "Introduction to Programming", 4)
	if !created.IsActive {
		t.Error("new courses should start active")
	}

	// A client-supplied inactive flag is overridden on create.
	course := &models.Course{Code: "MA201", Name: "Linear Algebra", Credits: 3, IsActive: false}
	created, err := svc.Create(context.Background(), course)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !created.IsActive {
		t.Error("create should force the active flag on")
	}
}

func TestCourseCreditsMustBePositive(t *testing.T) {
	svc := newCourseService()

	for _, credits := range []int{0, -2} {
		_, err := svc.Create(context.Background(), &models.Course{Code: "CS101", Name: "Intro", Credits: credits})
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Create with credits %d = %v, want invalid input", credits, err)
		}
	}
}

func TestCourseCodeUniqueness(t *testing.T) {
	svc := newCourseService()
	mustCreateCourse(t, svc, "CS101", "Introduction to Programming", 4)

	_, err := svc.Create(context.Background(), &models.Course{Code: "CS101", Name: "Another", Credits: 3})
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Errorf("Create with taken code = %v, want duplicate entry", err)
	}
}

func TestCourseHardDeleteFreesCode(t *testing.T) {
	svc := newCourseService()
	created := mustCreateCourse(t, svc, "CS101", "Introduction to Programming", 4)

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	listed, err := svc.List(context.Background(), query.CourseQuery{ID: &created.ID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("hard-deleted course should be gone, got %d records", len(listed))
	}

	// The code is registrable again.
	mustCreateCourse(t, svc, "CS101", "Introduction to Programming v2", 4)

	// And a repeated delete of the old id reports not found.
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Delete of removed course = %v, want not found", err)
	}
}

func TestCourseUpdateRechecksChangedCode(t *testing.T) {
	svc := newCourseService()
	first := mustCreateCourse(t, svc, "CS101", "Introduction to Programming", 4)
	mustCreateCourse(t, svc, "MA201", "Linear Algebra", 3)

	first.Name = "Programming I"
	if _, err := svc.Update(context.Background(), first); err != nil {
		t.Errorf("Update keeping own code = %v, want nil", err)
	}

	first.Code = "MA201"
	if _, err := svc.Update(context.Background(), first); !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Errorf("Update to taken code = %v, want duplicate entry", err)
	}
}

func TestCourseActiveFlagFilter(t *testing.T) {
	svc := newCourseService()
	mustCreateCourse(t, svc, "CS101", "Introduction to Programming", 4)
	second := mustCreateCourse(t, svc, "MA201", "Linear Algebra", 3)

	second.IsActive = false
	if _, err := svc.Update(context.Background(), second); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	active := true
	listed, err := svc.List(context.Background(), query.CourseQuery{IsActive: &active})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Code != "CS101" {
		t.Errorf("active filter matched %d records, want only CS101", len(listed))
	}
}
