package filter

import "strings"

// likeEscape is accepted as a LIKE escape character by MySQL, PostgreSQL and SQLite
// without dialect specific string literal rules.
const likeEscape = "!"

// ToSQL translates p into a WHERE fragment with positional "?" placeholders.
// A nil predicate yields an empty fragment.
func ToSQL(p Predicate) (string, []any) {
	if p == nil {
		return "", nil
	}
	var b sqlBuilder
	b.write(p)
	return b.sb.String(), b.args
}

type sqlBuilder struct {
	sb   strings.Builder
	args []any
}

func (b *sqlBuilder) write(p Predicate) {
	switch n := p.(type) {
	case Equals:
		b.sb.WriteString(n.Field.String())
		b.sb.WriteString(" = ?")
		b.args = append(b.args, n.Value)
	case Contains:
		b.sb.WriteString("LOWER(")
		b.sb.WriteString(n.Field.String())
		b.sb.WriteString(") LIKE ? ESCAPE '" + likeEscape + "'")
		b.args = append(b.args, "%"+escapeLike(strings.ToLower(n.Value))+"%")
	case And:
		b.group(n, " AND ", "1 = 1")
	case Or:
		b.group(n, " OR ", "1 = 0")
	case ExistsInRelated:
		rel := n.Relation
		b.sb.WriteString("EXISTS (SELECT 1 FROM ")
		b.sb.WriteString(rel.Table)
		b.sb.WriteString(" WHERE ")
		b.sb.WriteString(rel.Table + "." + rel.ForeignKey)
		b.sb.WriteString(" = ")
		b.sb.WriteString(rel.OwnerTable + "." + rel.OwnerKey)
		if n.Where != nil {
			b.sb.WriteString(" AND ")
			b.write(n.Where)
		}
		b.sb.WriteString(")")
	case nil:
		b.sb.WriteString("1 = 1")
	}
}

func (b *sqlBuilder) group(children []Predicate, sep, empty string) {
	if len(children) == 0 {
		b.sb.WriteString(empty)
		return
	}
	b.sb.WriteString("(")
	for i, c := range children {
		if i > 0 {
			b.sb.WriteString(sep)
		}
		b.write(c)
	}
	b.sb.WriteString(")")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}
