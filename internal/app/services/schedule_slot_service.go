package services

import (
	"context"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/policy"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

// ScheduleSlotService handles schedule slot operations
type ScheduleSlotService struct {
	repo ScheduleSlotRepository
	rule policy.Rule
}

// NewScheduleSlotService creates a new schedule slot service instance
func NewScheduleSlotService(repo ScheduleSlotRepository) *ScheduleSlotService {
	return &ScheduleSlotService{
		repo: repo,
		rule: policy.For(policy.EntityScheduleSlot),
	}
}

// validate checks the required fields and the time-range invariant:
// start_time must be strictly earlier than end_time.
func (s *ScheduleSlotService) validate(slot *models.ScheduleSlot) error {
	err := s.rule.CheckRequired(map[string]string{
		"day":  slot.Day,
		"room": slot.Room,
	})
	if err != nil {
		return err
	}

	start, err := models.ParseClock(slot.StartTime)
	if err != nil {
		return apperrors.NewInvalidInputf("start_time must be in %s format", models.ClockFormat)
	}
	end, err := models.ParseClock(slot.EndTime)
	if err != nil {
		return apperrors.NewInvalidInputf("end_time must be in %s format", models.ClockFormat)
	}
	if !start.Before(end) {
		return apperrors.NewInvalidInput("start_time must be before end_time")
	}

	return nil
}

// Create validates the slot and persists it. New slots always start active.
// The course and instructor references are not existence-checked here; the
// storage layer's referential integrity is the backstop.
func (s *ScheduleSlotService) Create(ctx context.Context, slot *models.ScheduleSlot) (*models.ScheduleSlot, error) {
	if err := s.validate(slot); err != nil {
		return nil, err
	}

	slot.ID = 0
	slot.IsActive = true
	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

// List returns the slots matching the descriptor.
func (s *ScheduleSlotService) List(ctx context.Context, q query.ScheduleSlotQuery) ([]models.ScheduleSlot, error) {
	return s.repo.List(ctx, q)
}

// Update fully replaces the slot identified by its id, re-checking the
// time-range invariant.
func (s *ScheduleSlotService) Update(ctx context.Context, slot *models.ScheduleSlot) (*models.ScheduleSlot, error) {
	if err := s.validate(slot); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, query.ScheduleSlotQuery{ID: &slot.ID})
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, apperrors.NewNotFound(s.rule.Entity, slot.ID)
	}

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

// Delete deactivates the slot, idempotently. The record stays queryable
// with is_active false.
func (s *ScheduleSlotService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.List(ctx, query.ScheduleSlotQuery{ID: &id})
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return apperrors.NewNotFound(s.rule.Entity, id)
	}

	slot := existing[0]
	if !slot.IsActive {
		return nil
	}

	slot.IsActive = false
	return s.repo.Update(ctx, &slot)
}
