package models

import "time"

type AssignmentStatus string

const (
	AssignmentStatusAssigned AssignmentStatus = "ASSIGNED"
	AssignmentStatusReleased AssignmentStatus = "RELEASED"
)

type ProjectAssignment struct {
	ProjectID   uint64           `gorm:"primarykey" json:"project_id"`
	DeveloperID string           `gorm:"type:varchar(36);primarykey" json:"developer_id"`
	Task        string           `gorm:"type:varchar(255)" json:"task"`
	StartDate   *time.Time       `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time       `gorm:"type:date" json:"end_date"`
	Status      AssignmentStatus `gorm:"type:varchar(20);not null;default:'ASSIGNED'" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relations
	Project   Project   `gorm:"foreignKey:ProjectID" json:"-"`
	Developer Developer `gorm:"foreignKey:DeveloperID" json:"developer,omitempty"`
}
