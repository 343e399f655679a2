package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "PLANNING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusOnHold     ProjectStatus = "ON_HOLD"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Client      string         `gorm:"type:varchar(255)" json:"client"`
	Status      ProjectStatus  `gorm:"type:varchar(20);not null;default:'PLANNING';index" json:"status"`
	StartDate   *time.Time     `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time     `gorm:"type:date" json:"end_date"`
	Description string         `gorm:"type:text" json:"description"`
	Model       string         `gorm:"type:varchar(255)" json:"model"`
	OS          string         `gorm:"column:os;type:varchar(255)" json:"os"`
	Language    string         `gorm:"type:varchar(255)" json:"language"`
	DBMS        string         `gorm:"column:dbms;type:varchar(255)" json:"dbms"`
	Tool        string         `gorm:"type:varchar(255)" json:"tool"`
	Protocol    string         `gorm:"type:varchar(255)" json:"protocol"`
	Etc         string         `gorm:"type:varchar(255)" json:"etc"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignments []ProjectAssignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
}
