// Package filter models search conditions as a small predicate tree that can
// be translated into a SQL WHERE fragment or evaluated against in-memory
// records.
package filter

import "strings"

// Field names a column of a table.
type Field struct {
	Table  string
	Column string
}

func (f Field) String() string {
	return f.Table + "." + f.Column
}

// Relation describes a one-to-many relation from an owner table to a related table.
type Relation struct {
	Name       string
	Table      string
	ForeignKey string
	OwnerTable string
	OwnerKey   string
}

// Predicate is one node of a predicate tree. A nil Predicate matches everything.
type Predicate interface {
	String() string
	predicate()
}

// Equals matches when the field equals Value exactly.
type Equals struct {
	Field Field
	Value string
}

// Contains matches when the field contains Value, ignoring case.
type Contains struct {
	Field Field
	Value string
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

// Or matches when at least one child matches. An empty Or matches nothing.
type Or []Predicate

// ExistsInRelated matches when at least one row of the related table belongs
// to the owner row and satisfies Where as a whole.
type ExistsInRelated struct {
	Relation Relation
	Where    Predicate
}

func (Equals) predicate()          {}
func (Contains) predicate()        {}
func (And) predicate()             {}
func (Or) predicate()              {}
func (ExistsInRelated) predicate() {}

func (p Equals) String() string {
	return p.Field.String() + " = " + quote(p.Value)
}

func (p Contains) String() string {
	return p.Field.String() + " ~ " + quote(p.Value)
}

func (p And) String() string {
	return join(p, " AND ", "TRUE")
}

func (p Or) String() string {
	return join(p, " OR ", "FALSE")
}

func (p ExistsInRelated) String() string {
	inner := "TRUE"
	if p.Where != nil {
		inner = p.Where.String()
	}
	return "EXISTS " + p.Relation.Name + "(" + inner + ")"
}

// AllOf conjoins the non-nil predicates. It returns nil when none remain and
// the single predicate unwrapped when only one remains.
func AllOf(predicates ...Predicate) Predicate {
	kept := compact(predicates)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return And(kept)
}

// AnyOf disjoins the non-nil predicates. It returns nil when none remain.
func AnyOf(predicates ...Predicate) Predicate {
	kept := compact(predicates)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return Or(kept)
}

// Describe renders p for logs, treating nil as the match-all predicate.
func Describe(p Predicate) string {
	if p == nil {
		return "TRUE"
	}
	return p.String()
}

// References reports whether p reads any column of table outside an
// ExistsInRelated subquery, i.e. whether evaluating it needs table joined in.
func References(p Predicate, table string) bool {
	switch n := p.(type) {
	case Equals:
		return n.Field.Table == table
	case Contains:
		return n.Field.Table == table
	case And:
		for _, c := range n {
			if References(c, table) {
				return true
			}
		}
	case Or:
		for _, c := range n {
			if References(c, table) {
				return true
			}
		}
	}
	return false
}

func compact(predicates []Predicate) []Predicate {
	kept := make([]Predicate, 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return kept
}

func join(children []Predicate, sep, empty string) string {
	if len(children) == 0 {
		return empty
	}
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
