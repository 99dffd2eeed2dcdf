// Package query implements the shared filtered-query engine: per-entity
// descriptors bind optional filters, a tolerant order-by and limit/page
// window, and materialize into a Spec the storage backends execute.
package query

import (
	"fmt"
	"strings"
)

// Op is a filter comparison operator.
type Op int

const (
	// OpEq matches on equality (ids, foreign keys, statuses, dates, booleans).
	OpEq Op = iota
	// OpContains matches case-insensitive substrings (free-text columns).
	OpContains
	// OpGTE and OpLTE are inclusive range bounds.
	OpGTE
	OpLTE
)

// Condition is a single column filter. All conditions of a Spec are
// AND-composed; the engine has no OR.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Spec is the materialized form of a query descriptor: resolved filter
// conditions, a validated ordering, and the pagination window.
type Spec struct {
	Conditions  []Condition
	OrderColumn string
	Descending  bool
	Limit       int
	Page        int
}

// Where adds an equality condition.
func (s *Spec) Where(column string, value any) {
	s.Conditions = append(s.Conditions, Condition{Column: column, Op: OpEq, Value: value})
}

// WhereContains adds a case-insensitive substring condition.
func (s *Spec) WhereContains(column, value string) {
	s.Conditions = append(s.Conditions, Condition{Column: column, Op: OpContains, Value: value})
}

// WhereGTE adds an inclusive lower bound.
func (s *Spec) WhereGTE(column string, value any) {
	s.Conditions = append(s.Conditions, Condition{Column: column, Op: OpGTE, Value: value})
}

// WhereLTE adds an inclusive upper bound.
func (s *Spec) WhereLTE(column string, value any) {
	s.Conditions = append(s.Conditions, Condition{Column: column, Op: OpLTE, Value: value})
}

// Order resolves the requested order-by name against the entity's column
// whitelist. Unknown names silently leave the Spec unordered; any direction
// other than a case-insensitive "desc" sorts ascending.
func (s *Spec) Order(requested, direction string, columns map[string]bool) {
	if requested == "" || !columns[requested] {
		return
	}
	s.OrderColumn = requested
	s.Descending = strings.EqualFold(direction, "desc")
}

// Offset returns the number of matching rows to skip. Page is 1-based and
// only takes effect when a limit is set.
func (s Spec) Offset() int {
	if s.Limit > 0 && s.Page > 1 {
		return (s.Page - 1) * s.Limit
	}
	return 0
}

// SelectSQL renders the Spec as a parameterized SELECT over the given table.
// Results always carry a trailing "id ASC" so that ordering is stable and
// the unordered case follows insertion order.
func (s Spec) SelectSQL(table string, columns []string) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(table)

	args := make([]any, 0, len(s.Conditions)+2)
	for i, c := range s.Conditions {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, c.Value)
		switch c.Op {
		case OpContains:
			fmt.Fprintf(&b, "%s ILIKE '%%' || $%d || '%%'", c.Column, len(args))
		case OpGTE:
			fmt.Fprintf(&b, "%s >= $%d", c.Column, len(args))
		case OpLTE:
			fmt.Fprintf(&b, "%s <= $%d", c.Column, len(args))
		default:
			fmt.Fprintf(&b, "%s = $%d", c.Column, len(args))
		}
	}

	if s.OrderColumn != "" {
		dir := "ASC"
		if s.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s, id ASC", s.OrderColumn, dir)
	} else {
		b.WriteString(" ORDER BY id ASC")
	}

	if s.Limit > 0 {
		args = append(args, s.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
		if offset := s.Offset(); offset > 0 {
			args = append(args, offset)
			fmt.Fprintf(&b, " OFFSET $%d", len(args))
		}
	}

	return b.String(), args
}
