package model

import "time"

// Contract is an agreement with a counterparty. It owns its clauses:
// deleting a contract deletes them too.
type Contract struct {
	ID                int            `gorm:"primaryKey" json:"id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Type              ContractType   `gorm:"size:32;not null" json:"type"`
	Status            ContractStatus `gorm:"size:32;not null;default:draft" json:"status"`
	Counterparty      string         `gorm:"size:255;not null" json:"counterparty"`
	CounterpartyEmail *string        `gorm:"size:255" json:"counterparty_email"`
	StartDate         *Date          `json:"start_date"`
	EndDate           *Date          `json:"end_date"`
	RenewalDate       *Date          `json:"renewal_date"`
	AutoRenew         bool           `gorm:"not null;default:false" json:"auto_renew"`
	Value             *float64       `json:"value"`
	Currency          string         `gorm:"size:10;not null;default:USD" json:"currency"`
	Summary           *string        `gorm:"type:text" json:"summary"`
	FileURL           *string        `gorm:"column:file_url;size:512" json:"file_url"`
	SignedDate        *Date          `json:"signed_date"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Clauses []Clause `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Contract) TableName() string { return "contracts" }
