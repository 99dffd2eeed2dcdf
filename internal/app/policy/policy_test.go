package policy

import (
	"errors"
	"testing"

	"github.com/derya/campusreg/internal/pkg/apperrors"
)

func TestForKnownEntities(t *testing.T) {
	for _, entity := range []string{
		EntityStudent, EntityInstructor, EntityCourse, EntityScheduleSlot, EntityAssignment,
	} {
		rule := For(entity)
		if rule.Entity != entity {
			t.Errorf("For(%q).Entity = %q", entity, rule.Entity)
		}
	}
}

func TestForUnknownEntityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("For should panic on an undeclared entity")
		}
	}()
	For("building")
}

func TestRemovalModes(t *testing.T) {
	if For(EntityCourse).Removal != HardDelete {
		t.Error("course removal should be destructive")
	}
	for _, entity := range []string{EntityStudent, EntityInstructor, EntityScheduleSlot, EntityAssignment} {
		if For(entity).Removal != SoftDelete {
			t.Errorf("%s removal should be a soft delete", entity)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if got := For(EntityStudent).TerminalStatus; got != "drop_out" {
		t.Errorf("student terminal status = %q, want drop_out", got)
	}
	if got := For(EntityInstructor).TerminalStatus; got != "inactive" {
		t.Errorf("instructor terminal status = %q, want inactive", got)
	}
	if got := For(EntityAssignment).TerminalStatus; got != "cancelled" {
		t.Errorf("assignment terminal status = %q, want cancelled", got)
	}
	// Flag-based lifecycle: no status enum
	if got := For(EntityScheduleSlot).TerminalStatus; got != "" {
		t.Errorf("schedule slot terminal status = %q, want empty", got)
	}
}

func TestCheckRequired(t *testing.T) {
	rule := For(EntityStudent)

	err := rule.CheckRequired(map[string]string{"student_number": "2301001", "name": "Ayse"})
	if err != nil {
		t.Errorf("CheckRequired with all fields = %v, want nil", err)
	}

	err = rule.CheckRequired(map[string]string{"student_number": "2301001", "name": ""})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("CheckRequired with empty name = %v, want invalid input", err)
	}
}
