// Package memory implements the storage adapters over in-process state.
// It keeps records in insertion order and reproduces the query engine's
// filter, ordering and pagination semantics, which makes it both a
// Postgres-free runtime backend and the storage double for service tests.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/derya/campusreg/internal/app/query"
)

// table is one entity collection. The projector exposes a record's columns
// by the same names the SQL backend uses, so a query.Spec evaluates
// identically against either backend.
type table[T any] struct {
	mu      sync.RWMutex
	nextID  int64
	rows    []T
	id      func(*T) int64
	setID   func(*T, int64)
	project func(*T) map[string]any
}

func newTable[T any](id func(*T) int64, setID func(*T, int64), project func(*T) map[string]any) *table[T] {
	return &table[T]{nextID: 1, id: id, setID: setID, project: project}
}

// insert appends the record and assigns the next id.
func (t *table[T]) insert(record *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.setID(record, t.nextID)
	t.nextID++
	t.rows = append(t.rows, *record)
}

// list evaluates the Spec: AND-composed conditions, stable ordering with
// insertion order as the tie-break, then the limit/page window.
func (t *table[T]) list(spec query.Spec) []T {
	t.mu.RLock()
	matched := make([]T, 0, len(t.rows))
	for i := range t.rows {
		if t.matches(&t.rows[i], spec.Conditions) {
			matched = append(matched, t.rows[i])
		}
	}
	t.mu.RUnlock()

	if spec.OrderColumn != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a := t.project(&matched[i])[spec.OrderColumn]
			b := t.project(&matched[j])[spec.OrderColumn]
			if spec.Descending {
				return lessValue(b, a)
			}
			return lessValue(a, b)
		})
	}

	if spec.Limit > 0 {
		offset := spec.Offset()
		if offset >= len(matched) {
			return []T{}
		}
		matched = matched[offset:]
		if len(matched) > spec.Limit {
			matched = matched[:spec.Limit]
		}
	}

	return matched
}

func (t *table[T]) matches(record *T, conditions []query.Condition) bool {
	if len(conditions) == 0 {
		return true
	}
	fields := t.project(record)
	for _, c := range conditions {
		value, ok := fields[c.Column]
		if !ok {
			return false
		}
		switch c.Op {
		case query.OpContains:
			have, haveOK := value.(string)
			want, wantOK := c.Value.(string)
			if !haveOK || !wantOK || !strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
				return false
			}
		case query.OpGTE:
			if lessValue(value, c.Value) {
				return false
			}
		case query.OpLTE:
			if lessValue(c.Value, value) {
				return false
			}
		default:
			if !equalValue(value, c.Value) {
				return false
			}
		}
	}
	return true
}

// replace swaps the stored record carrying the same id, keeping its
// position so insertion order is preserved.
func (t *table[T]) replace(record *T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if t.id(&t.rows[i]) == t.id(record) {
			t.rows[i] = *record
			return true
		}
	}
	return false
}

// remove deletes the record with the given id.
func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if t.id(&t.rows[i]) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}

// equalValue compares two column values after normalizing integer widths
// and nullable references.
func equalValue(a, b any) bool {
	if ai, ok := toInt64(a); ok {
		bi, ok := toInt64(b)
		return ok && ai == bi
	}
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	return a == b
}

// lessValue orders two column values of the same column; mixed or
// unsupported types are treated as unordered.
func lessValue(a, b any) bool {
	if ai, ok := toInt64(a); ok {
		bi, ok := toInt64(b)
		return ok && ai < bi
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case bool:
		bv, ok := b.(bool)
		return ok && !av && bv
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case *int64:
		if n == nil {
			return 0, false
		}
		return *n, true
	}
	return 0, false
}
