package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/app/repositories/memory"
	"github.com/derya/campusreg/internal/app/services"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

func newAssignmentService() *services.AssignmentService {
	return services.NewAssignmentService(memory.NewAssignmentRepository())
}

func mustCreateAssignment(t *testing.T, svc *services.AssignmentService, title string, due time.Time) *models.Assignment {
	t.Helper()
	assignment := &models.Assignment{Title: title, DueDate: due}
	created, err := svc.Create(context.Background(), assignment)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", title, err)
	}
	return created
}

func TestAssignmentCreateDefaultsToPending(t *testing.T) {
	svc := newAssignmentService()

	created := mustCreateAssignment(t, svc, "Problem set 1", time.Now().AddDate(0, 0, 14))
	if created.Status != models.AssignmentStatusPending {
		t.Errorf("status = %q, want default %q", created.Status, models.AssignmentStatusPending)
	}
}

func TestAssignmentCreateRejectsInvalidInput(t *testing.T) {
	svc := newAssignmentService()

	_, err := svc.Create(context.Background(), &models.Assignment{})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Create without title = %v, want invalid input", err)
	}

	_, err = svc.Create(context.Background(), &models.Assignment{Title: "PS1", Status: "overdue"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Create with unknown status = %v, want invalid input", err)
	}
}

func TestAssignmentDeleteCancelsIdempotently(t *testing.T) {
	svc := newAssignmentService()
	created := mustCreateAssignment(t, svc, "Problem set 1", time.Now().AddDate(0, 0, 14))

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}

	listed, err := svc.List(context.Background(), query.AssignmentQuery{ID: &created.ID})
	if err != nil || len(listed) != 1 {
		t.Fatalf("List after delete = %d records, err %v", len(listed), err)
	}
	if listed[0].Status != models.AssignmentStatusCancelled {
		t.Errorf("status after delete = %q, want %q", listed[0].Status, models.AssignmentStatusCancelled)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
}

func TestAssignmentDueDateRangeFilter(t *testing.T) {
	svc := newAssignmentService()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mustCreateAssignment(t, svc, "Early", base)
	mustCreateAssignment(t, svc, "Middle", base.AddDate(0, 0, 7))
	mustCreateAssignment(t, svc, "Late", base.AddDate(0, 0, 14))

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 13)
	listed, err := svc.List(context.Background(), query.AssignmentQuery{DueFrom: &from, DueTo: &to})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Middle" {
		t.Errorf("range filter matched %d records, want only Middle", len(listed))
	}

	// Bounds are inclusive.
	from = base
	listed, err = svc.List(context.Background(), query.AssignmentQuery{DueFrom: &from})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 3 {
		t.Errorf("inclusive lower bound matched %d records, want 3", len(listed))
	}
}

func TestAssignmentCourseAndStudentFilters(t *testing.T) {
	svc := newAssignmentService()
	courseID := int64(7)
	studentID := int64(3)

	first := &models.Assignment{Title: "Linked", DueDate: time.Now(), CourseID: &courseID, StudentID: &studentID}
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	mustCreateAssignment(t, svc, "Unlinked", time.Now())

	listed, err := svc.List(context.Background(), query.AssignmentQuery{CourseID: &courseID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Linked" {
		t.Errorf("course filter matched %d records, want only the linked assignment", len(listed))
	}

	listed, err = svc.List(context.Background(), query.AssignmentQuery{StudentID: &studentID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Linked" {
		t.Errorf("student filter matched %d records, want only the linked assignment", len(listed))
	}
}

func TestAssignmentUpdateNotFound(t *testing.T) {
	svc := newAssignmentService()

	_, err := svc.Update(context.Background(), &models.Assignment{ID: 123, Title: "Ghost"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Update of missing assignment = %v, want not found", err)
	}
}
