package service

import (
	"testing"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}

	counts := map[string]int64{}
	for table, m := range map[string]any{
		"contracts":        &model.Contract{},
		"clauses":          &model.Clause{},
		"compliance_items": &model.ComplianceItem{},
		"legal_contacts":   &model.LegalContact{},
		"legal_notes":      &model.LegalNote{},
	} {
		var n int64
		if err := db.Model(m).Count(&n).Error; err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		counts[table] = n
		if n == 0 {
			t.Errorf("Expected seeded rows in %s", table)
		}
	}

	// Seeding again must not duplicate anything.
	if err := Seed(db); err != nil {
		t.Fatalf("Failed to re-seed database: %v", err)
	}
	var contracts int64
	if err := db.Model(&model.Contract{}).Count(&contracts).Error; err != nil {
		t.Fatalf("Failed to count contracts: %v", err)
	}
	if contracts != counts["contracts"] {
		t.Errorf("Expected re-seed to be a no-op, contracts went from %d to %d", counts["contracts"], contracts)
	}
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	db := newTestDB(t)

	contract := model.Contract{
		Title: "Pre-existing", Type: model.ContractTypeNDA,
		Status: model.ContractStatusDraft, Counterparty: "X", Currency: "USD",
	}
	if err := db.Create(&contract).Error; err != nil {
		t.Fatalf("Failed to create contract: %v", err)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("Failed to run seed: %v", err)
	}

	var contracts int64
	if err := db.Model(&model.Contract{}).Count(&contracts).Error; err != nil {
		t.Fatalf("Failed to count contracts: %v", err)
	}
	if contracts != 1 {
		t.Errorf("Expected seed to leave populated database alone, got %d contracts", contracts)
	}
}
