package filter

import "strings"

// Record is a row that predicates can be evaluated against in memory.
type Record interface {
	// Value returns the value of f, or false when the record has no such field.
	Value(f Field) (string, bool)
	// Related returns the rows of rel that belong to this record.
	Related(rel Relation) []Record
}

// Evaluate reports whether r satisfies p. A nil predicate matches every record.
// It agrees with ToSQL on every predicate, so rows already loaded can be
// narrowed with the same predicates the store queries use.
func Evaluate(p Predicate, r Record) bool {
	switch n := p.(type) {
	case nil:
		return true
	case Equals:
		v, ok := r.Value(n.Field)
		return ok && v == n.Value
	case Contains:
		v, ok := r.Value(n.Field)
		return ok && strings.Contains(strings.ToLower(v), strings.ToLower(n.Value))
	case And:
		for _, c := range n {
			if !Evaluate(c, r) {
				return false
			}
		}
		return true
	case Or:
		for _, c := range n {
			if Evaluate(c, r) {
				return true
			}
		}
		return false
	case ExistsInRelated:
		for _, row := range r.Related(n.Relation) {
			if Evaluate(n.Where, row) {
				return true
			}
		}
		return false
	}
	return false
}
