package models

// Course represents a course in the catalog.
type Course struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Code     string `json:"code" db:"code" example:"CS201"`                // Unique course code
	Name     string `json:"name" db:"name" example:"Data Structures"`
	Credits  int    `json:"credits" db:"credits" example:"3"`              // Credit units, must be positive
	IsActive bool   `json:"isActive" db:"is_active" example:"true"`        // Offering flag
}
