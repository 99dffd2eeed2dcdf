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

func newInstructorService() *services.InstructorService {
	return services.NewInstructorService(memory.NewInstructorRepository())
}

func mustCreateInstructor(t *testing.T, svc *services.InstructorService, idNumber, name, email string) *models.Instructor {
	t.Helper()
	instructor := &models.Instructor{IDNumber: idNumber, Name: name, Email: email}
	created, err := svc.Create(context.Background(), instructor)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", idNumber, err)
	}
	return created
}

func TestInstructorCreateDefaults(t *testing.T) {
	svc := newInstructorService()

	created := mustCreateInstructor(t, svc, "198703011", "Dr. Zeynep Arslan", "zeynep@example.edu")
	if created.ID == 0 {
		t.Error("Create should assign a non-zero id")
	}
	if created.Status != models.InstructorStatusActive {
		t.Errorf("status = %q, want default %q", created.Status, models.InstructorStatusActive)
	}
}

func TestInstructorBothNaturalKeysChecked(t *testing.T) {
	svc := newInstructorService()
	mustCreateInstructor(t, svc, "198703011", "Dr. Zeynep Arslan", "zeynep@example.edu")

	var appErr *apperrors.Error

	// Same id number, different email.
	_, err := svc.Create(context.Background(), &models.Instructor{
		IDNumber: "198703011", Name: "Other", Email: "other@example.edu",
	})
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("Create with taken id number = %v, want duplicate entry", err)
	}
	if !errors.As(err, &appErr) || appErr.Field != "id_number" {
		t.Errorf("conflict field = %+v, want id_number", appErr)
	}

	// Different id number, same email.
	_, err = svc.Create(context.Background(), &models.Instructor{
		IDNumber: "199104022", Name: "Other", Email: "zeynep@example.edu",
	})
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("Create with taken email = %v, want duplicate entry", err)
	}
	if !errors.As(err, &appErr) || appErr.Field != "email" {
		t.Errorf("conflict field = %+v, want email", appErr)
	}
}

func TestInstructorUpdateKeepsOwnKeys(t *testing.T) {
	svc := newInstructorService()
	first := mustCreateInstructor(t, svc, "198703011", "Dr. Zeynep Arslan", "zeynep@example.edu")
	mustCreateInstructor(t, svc, "199104022", "Dr. Can Yildiz", "can@example.edu")

	first.Name = "Prof. Zeynep Arslan"
	if _, err := svc.Update(context.Background(), first); err != nil {
		t.Errorf("Update keeping own keys = %v, want nil", err)
	}

	first.Email = "can@example.edu"
	if _, err := svc.Update(context.Background(), first); !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Errorf("Update to taken email = %v, want duplicate entry", err)
	}
}

func TestInstructorDeleteIsIdempotent(t *testing.T) {
	svc := newInstructorService()
	created := mustCreateInstructor(t, svc, "198703011", "Dr. Zeynep Arslan", "zeynep@example.edu")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}

	listed, err := svc.List(context.Background(), query.InstructorQuery{ID: &created.ID})
	if err != nil || len(listed) != 1 {
		t.Fatalf("List after delete = %v records, err %v", len(listed), err)
	}
	if listed[0].Status != models.InstructorStatusInactive {
		t.Errorf("status after delete = %q, want %q", listed[0].Status, models.InstructorStatusInactive)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
}

func TestInstructorEmailSubstringFilter(t *testing.T) {
	svc := newInstructorService()
	mustCreateInstructor(t, svc, "198703011", "Dr. Zeynep Arslan", "zeynep@math.example.edu")
	mustCreateInstructor(t, svc, "199104022", "Dr. Can Yildiz", "can@cs.example.edu")

	email := "MATH"
	listed, err := svc.List(context.Background(), query.InstructorQuery{Email: &email})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].IDNumber != "198703011" {
		t.Errorf("email filter matched %d records, want only the math instructor", len(listed))
	}
}
