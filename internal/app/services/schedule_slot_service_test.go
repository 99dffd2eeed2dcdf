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

func newScheduleSlotService() *services.ScheduleSlotService {
	return services.NewScheduleSlotService(memory.NewScheduleSlotRepository())
}

func validSlot() *models.ScheduleSlot {
	return &models.ScheduleSlot{
		Day:          "Monday",
		StartTime:    "09:00",
		EndTime:      "10:40",
		Room:         "B-204",
		CourseID:     1,
		InstructorID: 1,
	}
}

func TestScheduleSlotCreateStartsActive(t *testing.T) {
	svc := newScheduleSlotService()

	created, err := svc.Create(context.Background(), validSlot())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Create should assign a non-zero id")
	}
	if !created.IsActive {
		t.Error("new slots should start active")
	}
}

func TestScheduleSlotTimeRangeInvariant(t *testing.T) {
	svc := newScheduleSlotService()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"normal range", "09:00", "10:40", false},
		{"one minute", "09:00", "09:01", false},
		{"equal times", "09:00", "09:00", true},
		{"reversed", "10:40", "09:00", true},
		{"bad start format", "9am", "10:40", true},
		{"bad end format", "09:00", "25:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := validSlot()
			slot.StartTime = tt.start
			slot.EndTime = tt.end
			_, err := svc.Create(context.Background(), slot)
			if tt.wantErr && !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("Create(%s-%s) = %v, want invalid input", tt.start, tt.end, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Create(%s-%s) = %v, want nil", tt.start, tt.end, err)
			}
		})
	}
}

func TestScheduleSlotUpdateRechecksTimes(t *testing.T) {
	svc := newScheduleSlotService()
	created, err := svc.Create(context.Background(), validSlot())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	created.EndTime = "08:00"
	if _, err := svc.Update(context.Background(), created); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Update with reversed range = %v, want invalid input", err)
	}
}

func TestScheduleSlotDeleteDeactivates(t *testing.T) {
	svc := newScheduleSlotService()
	created, err := svc.Create(context.Background(), validSlot())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}

	listed, err := svc.List(context.Background(), query.ScheduleSlotQuery{ID: &created.ID})
	if err != nil || len(listed) != 1 {
		t.Fatalf("List after delete = %d records, err %v", len(listed), err)
	}
	if listed[0].IsActive {
		t.Error("deleted slot should be inactive")
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Delete of missing slot = %v, want not found", err)
	}
}

func TestScheduleSlotFiltering(t *testing.T) {
	svc := newScheduleSlotService()

	first := validSlot()
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second := validSlot()
	second.Day = "Wednesday"
	second.Room = "A-101"
	second.InstructorID = 2
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	day := "wed"
	listed, err := svc.List(context.Background(), query.ScheduleSlotQuery{Day: &day})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Room != "A-101" {
		t.Errorf("day filter matched %d records, want the Wednesday slot", len(listed))
	}

	instructorID := int64(1)
	listed, err = svc.List(context.Background(), query.ScheduleSlotQuery{InstructorID: &instructorID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Day != "Monday" {
		t.Errorf("instructor filter matched %d records, want the Monday slot", len(listed))
	}
}
