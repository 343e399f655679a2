package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Developer struct {
	ID              string     `gorm:"type:varchar(36);primarykey" json:"id"`
	Name            string     `gorm:"type:varchar(100);not null;index" json:"name"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           string     `gorm:"type:varchar(30)" json:"phone"`
	Address         string     `gorm:"type:varchar(255)" json:"address"`
	BirthDate       *time.Time `gorm:"type:date" json:"birth_date"`
	Gender          string     `gorm:"type:varchar(10)" json:"gender"`
	Position        string     `gorm:"type:varchar(50)" json:"position"`
	Grade           string     `gorm:"type:varchar(50)" json:"grade"`
	StartDate       *time.Time `gorm:"type:date" json:"start_date"`
	CareerStartDate *time.Time `gorm:"type:date" json:"career_start_date"`
	Married         bool       `gorm:"not null;default:false" json:"married"`
	MilitaryStatus  string     `gorm:"type:varchar(20)" json:"military_status"`
	MilitaryBranch  string     `gorm:"type:varchar(20)" json:"military_branch"`
	MilitaryRank    string     `gorm:"type:varchar(20)" json:"military_rank"`
	EvaluationCode  string     `gorm:"type:varchar(20)" json:"evaluation_code"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	SkillRecords []SkillRecord       `gorm:"foreignKey:DeveloperID" json:"skills,omitempty"`
	Assignments  []ProjectAssignment `gorm:"foreignKey:DeveloperID" json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not supply one.
func (d *Developer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
