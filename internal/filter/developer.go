package filter

import "strings"

// Table names
const (
	DeveloperTable   = "developers"
	SkillRecordTable = "skill_records"
)

// Developer columns
var (
	DeveloperID       = Field{DeveloperTable, "id"}
	DeveloperName     = Field{DeveloperTable, "name"}
	DeveloperEmail    = Field{DeveloperTable, "email"}
	DeveloperPhone    = Field{DeveloperTable, "phone"}
	DeveloperGender   = Field{DeveloperTable, "gender"}
	DeveloperPosition = Field{DeveloperTable, "position"}
	DeveloperGrade    = Field{DeveloperTable, "grade"}
)

// Skill record columns
var (
	SkillModel    = Field{SkillRecordTable, "model"}
	SkillOS       = Field{SkillRecordTable, "os"}
	SkillLanguage = Field{SkillRecordTable, "language"}
	SkillDBMS     = Field{SkillRecordTable, "dbms"}
	SkillTool     = Field{SkillRecordTable, "tool"}
	SkillProtocol = Field{SkillRecordTable, "protocol"}
	SkillEtc      = Field{SkillRecordTable, "etc"}
	SkillTask     = Field{SkillRecordTable, "task"}
)

// SkillCategoryFields are the seven categorical skill columns of a skill record.
var SkillCategoryFields = []Field{
	SkillModel,
	SkillOS,
	SkillLanguage,
	SkillDBMS,
	SkillTool,
	SkillProtocol,
	SkillEtc,
}

// DeveloperSkills is the developer to skill record relation.
var DeveloperSkills = Relation{
	Name:       "skills",
	Table:      SkillRecordTable,
	ForeignKey: "developer_id",
	OwnerTable: DeveloperTable,
	OwnerKey:   "id",
}

// DeveloperCriteria holds the optional developer listing filters as received
// from the request. Empty values are ignored.
type DeveloperCriteria struct {
	Name     string
	Email    string
	Phone    string
	Gender   string
	Position string
	Grade    string
	Skills   string
}

// BuildDeveloperPredicate conjoins one predicate per non-empty criterion.
// It returns nil when no criterion is set.
func BuildDeveloperPredicate(c DeveloperCriteria, mode SkillMatchMode) Predicate {
	return AllOf(
		contains(DeveloperName, c.Name),
		contains(DeveloperEmail, c.Email),
		contains(DeveloperPhone, c.Phone),
		equals(DeveloperGender, c.Gender),
		equals(DeveloperPosition, c.Position),
		equals(DeveloperGrade, c.Grade),
		MatchSkills(c.Skills, mode),
	)
}

func contains(f Field, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return Contains{Field: f, Value: value}
}

func equals(f Field, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return Equals{Field: f, Value: value}
}
