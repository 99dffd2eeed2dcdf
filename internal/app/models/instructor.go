package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID       int64            `json:"id" db:"id" example:"1"`                            // Unique identifier for the instructor record
	IDNumber string           `json:"idNumber" db:"id_number" example:"0412078901"`      // National lecturer identification number
	Name     string           `json:"name" db:"name" example:"Dr. Brian Hale"`           // Full name
	Email    string           `json:"email" db:"email" example:"b.hale@campus.edu"`      // Institutional email address
	Status   InstructorStatus `json:"status" db:"status" example:"active"`               // Lifecycle status; defaults to active
}
