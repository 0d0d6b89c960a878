package pagination

import (
	"fmt"
	"strings"
)

// MatchMode selects how a filter value is compared against its column.
type MatchMode int

const (
	// MatchEquals compares with =. Used for identifier fields.
	MatchEquals MatchMode = iota
	// MatchContains is a case-insensitive substring match. Used for
	// free-text fields.
	MatchContains
)

// Filter is one optional condition: a column, a match mode and a value.
// Filters built from nil (or, for text, empty) inputs are inactive and
// contribute nothing to the predicate.
type Filter struct {
	Column string
	Mode   MatchMode
	Value  interface{}
	active bool
}

// Equals filters rows whose column equals *v. A nil v means "no filter".
func Equals(column string, v *int) Filter {
	f := Filter{Column: column, Mode: MatchEquals}
	if v != nil {
		f.Value = *v
		f.active = true
	}
	return f
}

// Contains filters rows whose column contains *v, case-insensitively.
// Both nil and empty strings mean "no filter".
func Contains(column string, v *string) Filter {
	f := Filter{Column: column, Mode: MatchContains}
	if v != nil && *v != "" {
		f.Value = *v
		f.active = true
	}
	return f
}

// Spec is the AND of its active filters. With no active filter it is a
// no-op predicate that matches everything.
type Spec struct {
	filters []Filter
}

func NewSpec(filters ...Filter) Spec {
	return Spec{filters: filters}
}

// Where renders the predicate as a SQL fragment starting with " WHERE ",
// or an empty string when no filter is active. Placeholders are numbered
// from startArg so the fragment composes with surrounding query arguments.
func (s Spec) Where(startArg int) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	n := startArg
	for _, f := range s.filters {
		if !f.active {
			continue
		}
		switch f.Mode {
		case MatchContains:
			clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", f.Column, n))
		default:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", f.Column, n))
		}
		args = append(args, f.Value)
		n++
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// IsEmpty reports whether the spec has no active filter.
func (s Spec) IsEmpty() bool {
	for _, f := range s.filters {
		if f.active {
			return false
		}
	}
	return true
}
