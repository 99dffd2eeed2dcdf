package query

import "time"

// ListParams are the ordering and pagination parameters shared by every
// descriptor. Page is 1-based and only effective together with limit.
type ListParams struct {
	OrderBy string `form:"order_by"`
	Order   string `form:"order"`
	Limit   int    `form:"limit"`
	Page    int    `form:"page"`
}

func (p ListParams) apply(s *Spec, columns map[string]bool) {
	s.Order(p.OrderBy, p.Order, columns)
	s.Limit = p.Limit
	s.Page = p.Page
}

var studentColumns = map[string]bool{
	"id":             true,
	"student_number": true,
	"name":           true,
	"class_group":    true,
	"birth_place":    true,
	"birth_date":     true,
	"status":         true,
}

// StudentQuery is the query descriptor for students.
type StudentQuery struct {
	ID            *int64     `form:"id"`
	StudentNumber *string    `form:"student_number"`
	Name          *string    `form:"name"`
	ClassGroup    *string    `form:"class_group"`
	BirthPlace    *string    `form:"birth_place"`
	BirthDate     *time.Time `form:"birth_date" time_format:"2006-01-02"`
	Status        *string    `form:"status"`
	ListParams
}

// Spec materializes the descriptor.
func (q StudentQuery) Spec() Spec {
	var s Spec
	if q.ID != nil {
		s.Where("id", *q.ID)
	}
	if q.StudentNumber != nil {
		s.Where("student_number", *q.StudentNumber)
	}
	if q.Name != nil {
		s.WhereContains("name", *q.Name)
	}
	if q.ClassGroup != nil {
		s.Where("class_group", *q.ClassGroup)
	}
	if q.BirthPlace != nil {
		s.WhereContains("birth_place", *q.BirthPlace)
	}
	if q.BirthDate != nil {
		s.Where("birth_date", *q.BirthDate)
	}
	if q.Status != nil {
		s.Where("status", *q.Status)
	}
	q.apply(&s, studentColumns)
	return s
}

var instructorColumns = map[string]bool{
	"id":        true,
	"id_number": true,
	"name":      true,
	"email":     true,
	"status":    true,
}

// InstructorQuery is the query descriptor for instructors.
type InstructorQuery struct {
	ID       *int64  `form:"id"`
	IDNumber *string `form:"id_number"`
	Name     *string `form:"name"`
	Email    *string `form:"email"`
	Status   *string `form:"status"`
	ListParams
}

// Spec materializes the descriptor.
func (q InstructorQuery) Spec() Spec {
	var s Spec
	if q.ID != nil {
		s.Where("id", *q.ID)
	}
	if q.IDNumber != nil {
		s.Where("id_number", *q.IDNumber)
	}
	if q.Name != nil {
		s.WhereContains("name", *q.Name)
	}
	if q.Email != nil {
		s.WhereContains("email", *q.Email)
	}
	if q.Status != nil {
		s.Where("status", *q.Status)
	}
	q.apply(&s, instructorColumns)
	return s
}

var courseColumns = map[string]bool{
	"id":        true,
	"code":      true,
	"name":      true,
	"credits":   true,
	"is_active": true,
}

// CourseQuery is the query descriptor for courses.
type CourseQuery struct {
	ID       *int64  `form:"id"`
	Code     *string `form:"code"`
	Name     *string `form:"name"`
	Credits  *int    `form:"credits"`
	IsActive *bool   `form:"is_active"`
	ListParams
}

// Spec materializes the descriptor.
func (q CourseQuery) Spec() Spec {
	var s Spec
	if q.ID != nil {
		s.Where("id", *q.ID)
	}
	if q.Code != nil {
		s.Where("code", *q.Code)
	}
	if q.Name != nil {
		s.WhereContains("name", *q.Name)
	}
	if q.Credits != nil {
		s.Where("credits", *q.Credits)
	}
	if q.IsActive != nil {
		s.Where("is_active", *q.IsActive)
	}
	q.apply(&s, courseColumns)
	return s
}

var scheduleSlotColumns = map[string]bool{
	"id":            true,
	"day":           true,
	"start_time":    true,
	"end_time":      true,
	"room":          true,
	"course_id":     true,
	"instructor_id": true,
	"is_active":     true,
}

// ScheduleSlotQuery is the query descriptor for schedule slots.
type ScheduleSlotQuery struct {
	ID           *int64  `form:"id"`
	Day          *string `form:"day"`
	StartTime    *string `form:"start_time"`
	EndTime      *string `form:"end_time"`
	Room         *string `form:"room"`
	CourseID     *int64  `form:"course_id"`
	InstructorID *int64  `form:"instructor_id"`
	IsActive     *bool   `form:"is_active"`
	ListParams
}

// Spec materializes the descriptor.
func (q ScheduleSlotQuery) Spec() Spec {
	var s Spec
	if q.ID != nil {
		s.Where("id", *q.ID)
	}
	if q.Day != nil {
		s.WhereContains("day", *q.Day)
	}
	if q.StartTime != nil {
		s.Where("start_time", *q.StartTime)
	}
	if q.EndTime != nil {
		s.Where("end_time", *q.EndTime)
	}
	if q.Room != nil {
		s.WhereContains("room", *q.Room)
	}
	if q.CourseID != nil {
		s.Where("course_id", *q.CourseID)
	}
	if q.InstructorID != nil {
		s.Where("instructor_id", *q.InstructorID)
	}
	if q.IsActive != nil {
		s.Where("is_active", *q.IsActive)
	}
	q.apply(&s, scheduleSlotColumns)
	return s
}

var assignmentColumns = map[string]bool{
	"id":         true,
	"title":      true,
	"due_date":   true,
	"status":     true,
	"course_id":  true,
	"student_id": true,
}

// AssignmentQuery is the query descriptor for assignments. DueFrom and
// DueTo are inclusive bounds on the due date.
type AssignmentQuery struct {
	ID        *int64     `form:"id"`
	Title     *string    `form:"title"`
	Status    *string    `form:"status"`
	CourseID  *int64     `form:"course_id"`
	StudentID *int64     `form:"student_id"`
	DueFrom   *time.Time `form:"due_from" time_format:"2006-01-02T15:04:05Z07:00"`
	DueTo     *time.Time `form:"due_to" time_format:"2006-01-02T15:04:05Z07:00"`
	ListParams
}

// Spec materializes the descriptor.
func (q AssignmentQuery) Spec() Spec {
	var s Spec
	if q.ID != nil {
		s.Where("id", *q.ID)
	}
	if q.Title != nil {
		s.WhereContains("title", *q.Title)
	}
	if q.Status != nil {
		s.Where("status", *q.Status)
	}
	if q.CourseID != nil {
		s.Where("course_id", *q.CourseID)
	}
	if q.StudentID != nil {
		s.Where("student_id", *q.StudentID)
	}
	if q.DueFrom != nil {
		s.WhereGTE("due_date", *q.DueFrom)
	}
	if q.DueTo != nil {
		s.WhereLTE("due_date", *q.DueTo)
	}
	q.apply(&s, assignmentColumns)
	return s
}
