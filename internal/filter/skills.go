package filter

import "strings"

// SkillMatchMode selects how multiple skill tokens are matched against a
// developer's skill records.
type SkillMatchMode string

const (
	// MatchSingleRecord requires a single skill record whose category columns
	// jointly contain every token.
	MatchSingleRecord SkillMatchMode = "single-record"
	// MatchPerToken requires, for each token, some skill record containing it.
	MatchPerToken SkillMatchMode = "per-token"
)

// ParseSkillMatchMode maps a configuration value to a mode, defaulting to
// MatchSingleRecord.
func ParseSkillMatchMode(s string) SkillMatchMode {
	if SkillMatchMode(strings.ToLower(strings.TrimSpace(s))) == MatchPerToken {
		return MatchPerToken
	}
	return MatchSingleRecord
}

// SkillTokens splits a comma separated skill query into trimmed, non-empty tokens.
func SkillTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// MatchSkills builds the existence predicate for a comma separated skill
// query, or nil when the query holds no tokens.
func MatchSkills(raw string, mode SkillMatchMode) Predicate {
	tokens := SkillTokens(raw)
	if len(tokens) == 0 {
		return nil
	}

	groups := tokenGroups(tokens)
	if mode == MatchPerToken {
		exists := make([]Predicate, len(groups))
		for i, g := range groups {
			exists[i] = ExistsInRelated{Relation: DeveloperSkills, Where: g}
		}
		return AllOf(exists...)
	}

	// Every token group is tested against the same related row.
	return ExistsInRelated{Relation: DeveloperSkills, Where: AllOf(groups...)}
}

// MatchSkillRecord builds the predicate one skill record satisfies when its
// category columns jointly contain every token, or nil for an empty query.
func MatchSkillRecord(raw string) Predicate {
	return AllOf(tokenGroups(SkillTokens(raw))...)
}

func tokenGroups(tokens []string) []Predicate {
	groups := make([]Predicate, len(tokens))
	for i, token := range tokens {
		groups[i] = anyCategoryContains(token)
	}
	return groups
}

func anyCategoryContains(token string) Predicate {
	or := make(Or, len(SkillCategoryFields))
	for i, f := range SkillCategoryFields {
		or[i] = Contains{Field: f, Value: token}
	}
	return or
}
