package models

import "time"

// ClockFormat is the accepted layout for slot times of day.
const ClockFormat = "15:04"

// ScheduleSlot represents one weekly teaching slot of a course.
// StartTime and EndTime are times of day in "HH:MM" form; StartTime must be
// strictly earlier than EndTime.
type ScheduleSlot struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Day          string `json:"day" db:"day" example:"Monday"`            // Day of week the slot occurs on
	StartTime    string `json:"startTime" db:"start_time" example:"08:00"`
	EndTime      string `json:"endTime" db:"end_time" example:"09:40"`
	Room         string `json:"room" db:"room" example:"B-204"`
	CourseID     int64  `json:"courseId" db:"course_id" example:"1"`      // Course taught in this slot
	InstructorID int64  `json:"instructorId" db:"instructor_id" example:"1"` // Instructor teaching this slot
	IsActive     bool   `json:"isActive" db:"is_active" example:"true"`
}

// ParseClock parses an "HH:MM" time-of-day value.
func ParseClock(value string) (time.Time, error) {
	return time.Parse(ClockFormat, value)
}
