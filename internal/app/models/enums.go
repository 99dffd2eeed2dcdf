package models

// StudentStatus is the lifecycle state of a student record.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusDropOut   StudentStatus = "drop_out"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusOnLeave   StudentStatus = "on_leave"
)

// Valid reports whether the value is one of the declared student statuses.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusDropOut, StudentStatusGraduated, StudentStatusOnLeave:
		return true
	}
	return false
}

// InstructorStatus is the lifecycle state of an instructor record.
type InstructorStatus string

const (
	InstructorStatusActive   InstructorStatus = "active"
	InstructorStatusInactive InstructorStatus = "inactive"
	InstructorStatusOnLeave  InstructorStatus = "on_leave"
)

// Valid reports whether the value is one of the declared instructor statuses.
func (s InstructorStatus) Valid() bool {
	switch s {
	case InstructorStatusActive, InstructorStatusInactive, InstructorStatusOnLeave:
		return true
	}
	return false
}

// AssignmentStatus is the workflow state of an assignment.
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusDone       AssignmentStatus = "done"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
)

// Valid reports whether the value is one of the declared assignment statuses.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusInProgress, AssignmentStatusDone, AssignmentStatusCancelled:
		return true
	}
	return false
}
