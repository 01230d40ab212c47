package service

import (
	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// expiringSoonDays is the dashboard's window for contracts nearing expiry.
const expiringSoonDays = 30

// DashboardService computes the read-only dashboard snapshot.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Snapshot aggregates contract and compliance state as of today. It is a
// pure read; empty tables yield zeros.
func (s *DashboardService) Snapshot() (*model.DashboardSnapshot, error) {
	today := model.Today()
	deadline := today.AddDays(expiringSoonDays)

	var snap model.DashboardSnapshot

	active := s.db.Model(&model.Contract{}).Where("status = ?", model.ContractStatusActive)
	if err := active.Count(&snap.ActiveContractsCount).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&model.Contract{}).
		Where("status = ?", model.ContractStatusActive).
		Select("COALESCE(SUM(COALESCE(value, 0)), 0)").
		Scan(&snap.TotalContractValue).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&model.Contract{}).
		Where("status = ?", model.ContractStatusActive).
		Where("end_date IS NOT NULL AND end_date >= ? AND end_date <= ?", today, deadline).
		Count(&snap.ExpiringSoonCount).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status model.ComplianceStatus
		Count  int64
	}
	err = s.db.Model(&model.ComplianceItem{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		switch row.Status {
		case model.ComplianceStatusCompliant:
			snap.ComplianceStatus.Compliant = row.Count
		case model.ComplianceStatusNonCompliant:
			snap.ComplianceStatus.NonCompliant = row.Count
		case model.ComplianceStatusPending:
			snap.ComplianceStatus.Pending = row.Count
		case model.ComplianceStatusExpiring:
			snap.ComplianceStatus.Expiring = row.Count
		}
	}

	err = s.db.Model(&model.ComplianceItem{}).
		Where("due_date IS NOT NULL AND due_date < ?", today).
		Where("status <> ?", model.ComplianceStatusCompliant).
		Count(&snap.OverdueComplianceItems).Error
	if err != nil {
		return nil, err
	}

	return &snap, nil
}
