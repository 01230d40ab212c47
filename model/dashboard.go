package model

// ComplianceBreakdown counts compliance items per status. Statuses with no
// items report zero.
type ComplianceBreakdown struct {
	Compliant    int64 `json:"compliant"`
	NonCompliant int64 `json:"non_compliant"`
	Pending      int64 `json:"pending"`
	Expiring     int64 `json:"expiring"`
}

// DashboardSnapshot is the computed summary of current contract and
// compliance state. It is derived at read time and never persisted.
type DashboardSnapshot struct {
	ActiveContractsCount   int64               `json:"active_contracts_count"`
	TotalContractValue     float64             `json:"total_contract_value"`
	ExpiringSoonCount      int64               `json:"expiring_soon_count"`
	ComplianceStatus       ComplianceBreakdown `json:"compliance_status"`
	OverdueComplianceItems int64               `json:"overdue_compliance_items"`
}
