package model

import "time"

// LegalNote is a free-form note. ReferenceType plus ReferenceID form a weak
// pointer into contracts or compliance items: stored and filterable, never
// validated against the referenced table.
type LegalNote struct {
	ID            int           `gorm:"primaryKey" json:"id"`
	ReferenceType ReferenceType `gorm:"size:32;not null" json:"reference_type"`
	ReferenceID   *int          `json:"reference_id"`
	Content       string        `gorm:"type:text;not null" json:"content"`
	Author        string        `gorm:"size:255;not null" json:"author"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (LegalNote) TableName() string { return "legal_notes" }
