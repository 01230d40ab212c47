package model

// Clause is a single provision of a contract. contract_id must reference
// an existing contract on create and on any update that changes it.
type Clause struct {
	ID         int        `gorm:"primaryKey" json:"id"`
	ContractID int        `gorm:"not null;index" json:"contract_id"`
	Type       ClauseType `gorm:"size:32;not null" json:"type"`
	Summary    *string    `gorm:"size:512" json:"summary"`
	Text       string     `gorm:"type:text;not null" json:"text"`
	RiskLevel  RiskLevel  `gorm:"size:16;not null;default:low" json:"risk_level"`
	Notes      *string    `gorm:"type:text" json:"notes"`
}

func (Clause) TableName() string { return "clauses" }
