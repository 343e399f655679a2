package models

import "time"

// SkillRecord is one dated entry of a developer's project and skill history.
// A developer has at most one record per start month.
type SkillRecord struct {
	DeveloperID  string    `gorm:"type:varchar(36);primarykey" json:"developer_id"`
	StartYM      string    `gorm:"column:start_ym;type:varchar(7);primarykey" json:"start_ym"`
	EndYM        string    `gorm:"column:end_ym;type:varchar(7)" json:"end_ym"`
	ProjectName  string    `gorm:"type:varchar(255)" json:"project_name"`
	Client       string    `gorm:"type:varchar(255)" json:"client"`
	Practitioner string    `gorm:"type:varchar(255)" json:"practitioner"`
	Task         string    `gorm:"type:text" json:"task"`
	Model        string    `gorm:"type:varchar(255)" json:"model"`
	OS           string    `gorm:"column:os;type:varchar(255)" json:"os"`
	Language     string    `gorm:"type:varchar(255)" json:"language"`
	DBMS         string    `gorm:"column:dbms;type:varchar(255)" json:"dbms"`
	Tool         string    `gorm:"type:varchar(255)" json:"tool"`
	Protocol     string    `gorm:"type:varchar(255)" json:"protocol"`
	Etc          string    `gorm:"type:varchar(255)" json:"etc"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
