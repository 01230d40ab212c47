package model

// LegalContact is an external legal professional. No timestamps.
type LegalContact struct {
	ID         int         `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"size:255;not null" json:"name"`
	Role       ContactRole `gorm:"size:32;not null" json:"role"`
	Firm       *string     `gorm:"size:255" json:"firm"`
	Email      *string     `gorm:"size:255" json:"email"`
	Phone      *string     `gorm:"size:50" json:"phone"`
	Specialty  *string     `gorm:"size:255" json:"specialty"`
	HourlyRate *float64    `json:"hourly_rate"`
	Notes      *string     `gorm:"type:text" json:"notes"`
}

func (LegalContact) TableName() string { return "legal_contacts" }
