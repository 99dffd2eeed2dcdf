// Package policy declares the per-entity lifecycle rules: which fields are
// required, which form the natural key, and whether removal is destructive
// or a terminal-status transition. Services consult this table instead of
// carrying ad hoc conditionals.
package policy

import "github.com/derya/campusreg/internal/pkg/apperrors"

// Removal distinguishes destructive deletes from terminal-status flips.
type Removal int

const (
	// HardDelete physically removes the record.
	HardDelete Removal = iota
	// SoftDelete sets the record's status or flag to the terminal value and
	// keeps it queryable. Re-deleting a terminal record is a no-op success.
	SoftDelete
)

// Rule is the lifecycle policy for one entity kind. For entities whose
// lifecycle field is a boolean flag rather than a status enum, the status
// values are empty and the flag's terminal value is false.
type Rule struct {
	Entity         string
	Required       []string
	Unique         []string
	Removal        Removal
	DefaultStatus  string
	TerminalStatus string
}

const (
	EntityStudent      = "student"
	EntityInstructor   = "instructor"
	EntityCourse       = "course"
	EntityScheduleSlot = "schedule slot"
	EntityAssignment   = "assignment"
)

var rules = map[string]Rule{
	EntityStudent: {
		Entity:         EntityStudent,
		Required:       []string{"student_number", "name"},
		Unique:         []string{"student_number"},
		Removal:        SoftDelete,
		DefaultStatus:  "active",
		TerminalStatus: "drop_out",
	},
	EntityInstructor: {
		Entity:         EntityInstructor,
		Required:       []string{"id_number", "name", "email"},
		Unique:         []string{"id_number", "email"},
		Removal:        SoftDelete,
		DefaultStatus:  "active",
		TerminalStatus: "inactive",
	},
	EntityCourse: {
		Entity:   EntityCourse,
		Required: []string{"code", "name"},
		Unique:   []string{"code"},
		Removal:  HardDelete,
	},
	EntityScheduleSlot: {
		Entity:   EntityScheduleSlot,
		Required: []string{"day", "room"},
		Removal:  SoftDelete,
	},
	EntityAssignment: {
		Entity:         EntityAssignment,
		Required:       []string{"title"},
		Removal:        SoftDelete,
		DefaultStatus:  "pending",
		TerminalStatus: "cancelled",
	},
}

// For returns the rule for the given entity kind. Unknown kinds panic: the
// table is part of the program, not input.
func For(entity string) Rule {
	rule, ok := rules[entity]
	if !ok {
		panic("policy: no rule declared for entity " + entity)
	}
	return rule
}

// CheckRequired validates the declared required text fields against the
// given field values and reports the first empty one as invalid input.
func (r Rule) CheckRequired(fields map[string]string) error {
	for _, name := range r.Required {
		if fields[name] == "" {
			return apperrors.NewInvalidInputf("%s cannot be empty", name)
		}
	}
	return nil
}
