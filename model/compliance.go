package model

import "time"

// ComplianceItem is a tracked regulatory or policy obligation.
type ComplianceItem struct {
	ID                int                `gorm:"primaryKey" json:"id"`
	Title             string             `gorm:"size:255;not null" json:"title"`
	Description       *string            `gorm:"type:text" json:"description"`
	Category          ComplianceCategory `gorm:"size:32;not null" json:"category"`
	Status            ComplianceStatus   `gorm:"size:32;not null;default:pending" json:"status"`
	DueDate           *Date              `json:"due_date"`
	ResponsiblePerson *string            `gorm:"size:255" json:"responsible_person"`
	Notes             *string            `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ComplianceItem) TableName() string { return "compliance_items" }
