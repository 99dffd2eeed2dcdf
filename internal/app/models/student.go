package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64         `json:"id" db:"id" example:"1"`                                 // Unique identifier for the student record
	StudentNumber string        `json:"studentNumber" db:"student_number" example:"2110150021"` // Student's unique registration number
	Name          string        `json:"name" db:"name" example:"Alice Carter"`                  // Full name
	ClassGroup    string        `json:"classGroup" db:"class_group" example:"2A"`               // Class/cohort the student belongs to
	BirthPlace    string        `json:"birthPlace" db:"birth_place" example:"Springfield"`      // Place of birth
	BirthDate     time.Time     `json:"birthDate" db:"birth_date" example:"2003-05-17T00:00:00Z"`
	Status        StudentStatus `json:"status" db:"status" example:"active"` // Lifecycle status; defaults to active
}
