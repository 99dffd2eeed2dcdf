package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/app/repositories/memory"
	"github.com/derya/campusreg/internal/app/services"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

func newStudentService() *services.StudentService {
	return services.NewStudentService(memory.NewStudentRepository())
}

func mustCreateStudent(t *testing.T, svc *services.StudentService, number, name string) *models.Student {
	t.Helper()
	student := &models.Student{
		StudentNumber: number,
		Name:          name,
		ClassGroup:    "A",
		BirthPlace:    "Ankara",
		BirthDate:     time.Date(2004, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	created, err := svc.Create(context.Background(), student)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", number, err)
	}
	return created
}

func TestStudentCreateAssignsIDAndDefaults(t *testing.T) {
	svc := newStudentService()

	created := mustCreateStudent(t, svc, "2301001", "Ayse Demir")
	if created.ID == 0 {
		t.Error("Create should assign a non-zero id")
	}
	if created.Status != models.StudentStatusActive {
		t.Errorf("status = %q, want default %q", created.Status, models.StudentStatusActive)
	}
}

func TestStudentCreateRejectsMissingFields(t *testing.T) {
	svc := newStudentService()

	_, err := svc.Create(context.Background(), &models.Student{Name: "No Number"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Create without student number = %v, want invalid input", err)
	}

	_, err = svc.Create(context.Background(), &models.Student{StudentNumber: "2301009"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Create without name = %v, want invalid input", err)
	}
}

func TestStudentCreateRejectsUnknownStatus(t *testing.T) {
	svc := newStudentService()

	_, err := svc.Create(context.Background(), &models.Student{
		StudentNumber: "2301001",
		Name:          "Ayse Demir",
		Status:        "expelled",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Create with unknown status = %v, want invalid input", err)
	}
}

func TestStudentNumberUniqueness(t *testing.T) {
	svc := newStudentService()
	mustCreateStudent(t, svc, "2301001", "Ayse Demir")

	_, err := svc.Create(context.Background(), &models.Student{
		StudentNumber: "2301001",
		Name:          "Someone Else",
	})
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("Create with taken number = %v, want duplicate entry", err)
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Field != "student_number" {
		t.Errorf("duplicate error field = %+v, want student_number", appErr)
	}
}

func TestStudentUpdateUniquenessOnChangedNumberOnly(t *testing.T) {
	svc := newStudentService()
	first := mustCreateStudent(t, svc, "2301001", "Ayse Demir")
	mustCreateStudent(t, svc, "2301002", "Mehmet Kaya")

	// Keeping the own number is never a conflict.
	first.Name = "Ayse D."
	if _, err := svc.Update(context.Background(), first); err != nil {
		t.Errorf("Update keeping own number = %v, want nil", err)
	}

	// Taking another student's number is.
	first.StudentNumber = "2301002"
	if _, err := svc.Update(context.Background(), first); !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Errorf("Update to taken number = %v, want duplicate entry", err)
	}
}

func TestStudentUpdateNotFound(t *testing.T) {
	svc := newStudentService()

	_, err := svc.Update(context.Background(), &models.Student{
		ID:            999,
		StudentNumber: "2301001",
		Name:          "Ghost",
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Update of missing student = %v, want not found", err)
	}
}

func TestStudentDeleteIsIdempotentSoftDelete(t *testing.T) {
	svc := newStudentService()
	created := mustCreateStudent(t, svc, "2301001", "Ayse Demir")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}

	listed, err := svc.List(context.Background(), query.StudentQuery{ID: &created.ID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("deleted student should stay queryable, got %d records", len(listed))
	}
	if listed[0].Status != models.StudentStatusDropOut {
		t.Errorf("status after delete = %q, want %q", listed[0].Status, models.StudentStatusDropOut)
	}

	// A second delete is a no-op success.
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
}

func TestStudentDeleteNotFound(t *testing.T) {
	svc := newStudentService()

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Delete of missing student = %v, want not found", err)
	}
}

func TestStudentListSubstringFilter(t *testing.T) {
	svc := newStudentService()
	mustCreateStudent(t, svc, "2301001", "Alice Smith")
	mustCreateStudent(t, svc, "2301002", "Bob Jones")
	mustCreateStudent(t, svc, "2301003", "Alicia Keys")

	name := "ali"
	listed, err := svc.List(context.Background(), query.StudentQuery{Name: &name})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("got %d students, want the 2 matching %q", len(listed), name)
	}
	if listed[0].Name != "Alice Smith" || listed[1].Name != "Alicia Keys" {
		t.Errorf("matches = %q, %q; want Alice Smith then Alicia Keys", listed[0].Name, listed[1].Name)
	}
}

func TestStudentListOrdering(t *testing.T) {
	svc := newStudentService()
	mustCreateStudent(t, svc, "2301002", "Mehmet")
	mustCreateStudent(t, svc, "2301001", "Ayse")
	mustCreateStudent(t, svc, "2301003", "Elif")

	listed, err := svc.List(context.Background(), query.StudentQuery{
		ListParams: query.ListParams{OrderBy: "student_number", Order: "desc"},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"2301003", "2301002", "2301001"}
	for i, number := range want {
		if listed[i].StudentNumber != number {
			t.Errorf("listed[%d] = %s, want %s", i, listed[i].StudentNumber, number)
		}
	}
}

func TestStudentListUnknownOrderColumnTolerated(t *testing.T) {
	svc := newStudentService()
	mustCreateStudent(t, svc, "2301002", "Mehmet")
	mustCreateStudent(t, svc, "2301001", "Ayse")

	listed, err := svc.List(context.Background(), query.StudentQuery{
		ListParams: query.ListParams{OrderBy: "shoe_size", Order: "desc"},
	})
	if err != nil {
		t.Fatalf("List with unknown order column = %v, want nil", err)
	}
	// Unordered results follow insertion order.
	if listed[0].StudentNumber != "2301002" || listed[1].StudentNumber != "2301001" {
		t.Errorf("order = %s, %s; want insertion order", listed[0].StudentNumber, listed[1].StudentNumber)
	}
}

func TestStudentListPagination(t *testing.T) {
	svc := newStudentService()
	for i := 1; i <= 5; i++ {
		mustCreateStudent(t, svc, fmt.Sprintf("230100%d", i), fmt.Sprintf("Student %d", i))
	}

	var seen []string
	for page := 1; page <= 4; page++ {
		listed, err := svc.List(context.Background(), query.StudentQuery{
			ListParams: query.ListParams{Limit: 2, Page: page},
		})
		if err != nil {
			t.Fatalf("List page %d failed: %v", page, err)
		}
		for _, s := range listed {
			seen = append(seen, s.StudentNumber)
		}
		switch page {
		case 1, 2:
			if len(listed) != 2 {
				t.Errorf("page %d has %d records, want 2", page, len(listed))
			}
		case 3:
			if len(listed) != 1 {
				t.Errorf("page 3 has %d records, want 1", len(listed))
			}
		case 4:
			if len(listed) != 0 {
				t.Errorf("page past the end has %d records, want 0", len(listed))
			}
		}
	}

	want := []string{"2301001", "2301002", "2301003", "2301004", "2301005"}
	if len(seen) != len(want) {
		t.Fatalf("paged through %d records, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %s, want %s", i, seen[i], want[i])
		}
	}
}
