package models

// Code is one entry of the reference-code registry, e.g. group "GRADE", code "SR".
type Code struct {
	GroupCode string `gorm:"type:varchar(30);primarykey" json:"group_code"`
	Code      string `gorm:"type:varchar(30);primarykey" json:"code"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
	Used      bool   `gorm:"not null" json:"used"`
}
