package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/campusreg/internal/app/models"
	"github.com/derya/campusreg/internal/app/query"
	"github.com/derya/campusreg/internal/pkg/apperrors"
)

var scheduleSlotSelectColumns = []string{"id", "day", "start_time", "end_time", "room", "course_id", "instructor_id", "is_active"}

// ScheduleSlotRepository handles database operations for schedule slots
type ScheduleSlotRepository struct {
	db *pgxpool.Pool
}

// NewScheduleSlotRepository creates a new schedule slot repository
func NewScheduleSlotRepository(db *pgxpool.Pool) *ScheduleSlotRepository {
	return &ScheduleSlotRepository{db: db}
}

// Create inserts a new schedule slot and assigns its id.
func (r *ScheduleSlotRepository) Create(ctx context.Context, slot *models.ScheduleSlot) error {
	sql := `
		INSERT INTO schedule_slots (day, start_time, end_time, room, course_id, instructor_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql,
		slot.Day,
		slot.StartTime,
		slot.EndTime,
		slot.Room,
		slot.CourseID,
		slot.InstructorID,
		slot.IsActive,
	).Scan(&slot.ID)
	if err != nil {
		return apperrors.NewStorage("insert schedule slot", err)
	}

	return nil
}

// List returns the schedule slots matching the descriptor.
func (r *ScheduleSlotRepository) List(ctx context.Context, q query.ScheduleSlotQuery) ([]models.ScheduleSlot, error) {
	sql, args := q.Spec().SelectSQL("schedule_slots", scheduleSlotSelectColumns)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStorage("select schedule slots", err)
	}
	defer rows.Close()

	slots := []models.ScheduleSlot{}
	for rows.Next() {
		var slot models.ScheduleSlot
		if err := rows.Scan(
			&slot.ID,
			&slot.Day,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Room,
			&slot.CourseID,
			&slot.InstructorID,
			&slot.IsActive,
		); err != nil {
			return nil, apperrors.NewStorage("scan schedule slot", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("select schedule slots", err)
	}

	return slots, nil
}

// Update replaces all fields of the schedule slot identified by its id.
func (r *ScheduleSlotRepository) Update(ctx context.Context, slot *models.ScheduleSlot) error {
	sql := `
		UPDATE schedule_slots
		SET day = $1, start_time = $2, end_time = $3, room = $4, course_id = $5, instructor_id = $6, is_active = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, sql,
		slot.Day,
		slot.StartTime,
		slot.EndTime,
		slot.Room,
		slot.CourseID,
		slot.InstructorID,
		slot.IsActive,
		slot.ID,
	)
	if err != nil {
		return apperrors.NewStorage("update schedule slot", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("schedule slot", slot.ID)
	}

	return nil
}
