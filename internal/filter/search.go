package filter

import "strings"

// freeTextFields are the skill record columns matched by the free text search.
var freeTextFields = append(append([]Field{}, SkillCategoryFields...), SkillTask)

// FreeText matches query against the developer name or any skill category or
// task column of a joined skill record row. It returns nil for a blank query.
//
// The predicate reads skill_records columns directly, so callers must left
// join skill_records and reduce the result to distinct developers.
func FreeText(query string) Predicate {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	or := Or{Contains{Field: DeveloperName, Value: query}}
	for _, f := range freeTextFields {
		or = append(or, Contains{Field: f, Value: query})
	}
	return or
}
