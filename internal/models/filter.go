package models

import "github.com/coremade/core-hp/internal/filter"

// Value implements filter.Record.
func (d Developer) Value(f filter.Field) (string, bool) {
	if f.Table != filter.DeveloperTable {
		return "", false
	}
	switch f.Column {
	case "id":
		return d.ID, true
	case "name":
		return d.Name, true
	case "email":
		return d.Email, true
	case "phone":
		return d.Phone, true
	case "gender":
		return d.Gender, true
	case "position":
		return d.Position, true
	case "grade":
		return d.Grade, true
	}
	return "", false
}

// Related implements filter.Record. Skill records must be preloaded.
func (d Developer) Related(rel filter.Relation) []filter.Record {
	if rel != filter.DeveloperSkills {
		return nil
	}
	out := make([]filter.Record, len(d.SkillRecords))
	for i, s := range d.SkillRecords {
		out[i] = s
	}
	return out
}

// Value implements filter.Record.
func (s SkillRecord) Value(f filter.Field) (string, bool) {
	if f.Table != filter.SkillRecordTable {
		return "", false
	}
	switch f.Column {
	case "model":
		return s.Model, true
	case "os":
		return s.OS, true
	case "language":
		return s.Language, true
	case "dbms":
		return s.DBMS, true
	case "tool":
		return s.Tool, true
	case "protocol":
		return s.Protocol, true
	case "etc":
		return s.Etc, true
	case "task":
		return s.Task, true
	}
	return "", false
}

// Related implements filter.Record.
func (s SkillRecord) Related(filter.Relation) []filter.Record {
	return nil
}
