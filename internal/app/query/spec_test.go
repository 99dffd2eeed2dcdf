package query

import (
	"reflect"
	"testing"
)

func TestSelectSQLNoFilters(t *testing.T) {
	var s Spec
	sql, args := s.SelectSQL("students", []string{"id", "name"})

	want := "SELECT id, name FROM students ORDER BY id ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestSelectSQLConditions(t *testing.T) {
	var s Spec
	s.Where("status", "active")
	s.WhereContains("name", "ali")
	s.WhereGTE("credits", 3)
	s.WhereLTE("credits", 5)

	sql, args := s.SelectSQL("courses", []string{"id"})

	want := "SELECT id FROM courses WHERE status = $1" +
		" AND name ILIKE '%' || $2 || '%'" +
		" AND credits >= $3 AND credits <= $4" +
		" ORDER BY id ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	wantArgs := []any{"active", "ali", 3, 5}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestSelectSQLOrderAndWindow(t *testing.T) {
	s := Spec{OrderColumn: "name", Descending: true, Limit: 2, Page: 3}
	sql, args := s.SelectSQL("students", []string{"id", "name"})

	want := "SELECT id, name FROM students ORDER BY name DESC, id ASC LIMIT $1 OFFSET $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	wantArgs := []any{2, 4}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestOrderUnknownColumnIgnored(t *testing.T) {
	columns := map[string]bool{"id": true, "name": true}

	var s Spec
	s.Order("not_a_column", "desc", columns)
	if s.OrderColumn != "" {
		t.Errorf("OrderColumn = %q, want unordered", s.OrderColumn)
	}

	s.Order("name", "DESC", columns)
	if s.OrderColumn != "name" || !s.Descending {
		t.Errorf("Order(name, DESC) = %q desc=%v, want name descending", s.OrderColumn, s.Descending)
	}

	s = Spec{}
	s.Order("name", "upwards", columns)
	if s.Descending {
		t.Error("non-desc direction should sort ascending")
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		page  int
		want  int
	}{
		{"no limit", 0, 5, 0},
		{"first page", 10, 1, 0},
		{"page unset", 10, 0, 0},
		{"third page", 10, 3, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Spec{Limit: tt.limit, Page: tt.page}
			if got := s.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescriptorSpec(t *testing.T) {
	name := "ali"
	status := "active"
	q := StudentQuery{
		Name:   &name,
		Status: &status,
		ListParams: ListParams{
			OrderBy: "birth_date",
			Order:   "desc",
			Limit:   10,
			Page:    2,
		},
	}

	s := q.Spec()
	if len(s.Conditions) != 2 {
		t.Fatalf("len(Conditions) = %d, want 2", len(s.Conditions))
	}
	if s.Conditions[0].Op != OpContains || s.Conditions[0].Column != "name" {
		t.Errorf("first condition = %+v, want name substring", s.Conditions[0])
	}
	if s.Conditions[1].Op != OpEq || s.Conditions[1].Column != "status" {
		t.Errorf("second condition = %+v, want status equality", s.Conditions[1])
	}
	if s.OrderColumn != "birth_date" || !s.Descending {
		t.Errorf("order = %q desc=%v, want birth_date descending", s.OrderColumn, s.Descending)
	}
	if s.Limit != 10 || s.Offset() != 10 {
		t.Errorf("limit = %d offset = %d, want 10 and 10", s.Limit, s.Offset())
	}
}
