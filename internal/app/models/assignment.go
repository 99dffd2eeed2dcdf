package models

import "time"

// Assignment represents a piece of coursework. The course and student
// references are optional; referential integrity is left to the storage
// layer.
type Assignment struct {
	ID          int64            `json:"id" db:"id" example:"1"`
	Title       string           `json:"title" db:"title" example:"Graph traversal homework"`
	Description string           `json:"description" db:"description" example:"Implement BFS and DFS"`
	DueDate     time.Time        `json:"dueDate" db:"due_date" example:"2025-06-01T23:59:00Z"`
	Status      AssignmentStatus `json:"status" db:"status" example:"pending"` // Workflow status; defaults to pending
	CourseID    *int64           `json:"courseId,omitempty" db:"course_id"`    // Nullable course reference
	StudentID   *int64           `json:"studentId,omitempty" db:"student_id"`  // Nullable student reference
}
