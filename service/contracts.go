package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// ContractService is the repository for contracts.
type ContractService struct {
	db *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{db: db}
}

// ContractFilter narrows List results. Nil fields are ignored.
type ContractFilter struct {
	Status         *model.ContractStatus
	ExpiringWithin *int // end_date within [today, today+N]
}

// List returns contracts matching the filter, newest first.
func (s *ContractService) List(f ContractFilter) ([]model.Contract, error) {
	q := s.db.Model(&model.Contract{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.ExpiringWithin != nil {
		today := model.Today()
		deadline := today.AddDays(*f.ExpiringWithin)
		q = q.Where("end_date IS NOT NULL AND end_date >= ? AND end_date <= ?", today, deadline)
	}

	contracts := []model.Contract{}
	if err := q.Order("created_at DESC").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (s *ContractService) Get(id int) (*model.Contract, error) {
	var contract model.Contract
	if err := s.db.First(&contract, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Contract", ID: id}
		}
		return nil, err
	}
	return &contract, nil
}

func (s *ContractService) Create(contract *model.Contract) error {
	return s.db.Create(contract).Error
}

// Update applies only the supplied fields. An empty update is a no-op that
// returns the contract unchanged.
func (s *ContractService) Update(id int, fields map[string]any) (*model.Contract, error) {
	contract, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return contract, nil
	}
	if err := s.db.Model(contract).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the contract and all of its clauses in one transaction.
func (s *ContractService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).Delete(&model.Clause{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Contract{}, id).Error
	})
}

// Clauses returns the clauses owned by a contract, failing with NotFound
// when the contract itself is absent.
func (s *ContractService) Clauses(contractID int) ([]model.Clause, error) {
	if _, err := s.Get(contractID); err != nil {
		return nil, err
	}
	clauses := []model.Clause{}
	if err := s.db.Where("contract_id = ?", contractID).Find(&clauses).Error; err != nil {
		return nil, err
	}
	return clauses, nil
}

// Exists reports whether a contract with the given id is stored.
func (s *ContractService) Exists(id int) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Contract{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
