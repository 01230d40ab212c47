package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// ClauseService is the repository for clauses.
type ClauseService struct {
	db        *gorm.DB
	contracts *ContractService
}

func NewClauseService(db *gorm.DB, contracts *ContractService) *ClauseService {
	return &ClauseService{db: db, contracts: contracts}
}

// ClauseFilter narrows List results. Nil fields are ignored.
type ClauseFilter struct {
	ContractID *int
	RiskLevel  *model.RiskLevel
}

func (s *ClauseService) List(f ClauseFilter) ([]model.Clause, error) {
	q := s.db.Model(&model.Clause{})
	if f.ContractID != nil {
		q = q.Where("contract_id = ?", *f.ContractID)
	}
	if f.RiskLevel != nil {
		q = q.Where("risk_level = ?", *f.RiskLevel)
	}

	clauses := []model.Clause{}
	if err := q.Find(&clauses).Error; err != nil {
		return nil, err
	}
	return clauses, nil
}

func (s *ClauseService) Get(id int) (*model.Clause, error) {
	var clause model.Clause
	if err := s.db.First(&clause, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Clause", ID: id}
		}
		return nil, err
	}
	return &clause, nil
}

// Create persists a clause after checking its contract exists. Nothing is
// written when the reference is dangling.
func (s *ClauseService) Create(clause *model.Clause) error {
	if err := s.checkContract(clause.ContractID); err != nil {
		return err
	}
	return s.db.Create(clause).Error
}

// Update applies only the supplied fields, re-validating contract_id when
// it is among them.
func (s *ClauseService) Update(id int, fields map[string]any) (*model.Clause, error) {
	clause, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if contractID, ok := fields["contract_id"]; ok {
		if err := s.checkContract(contractID.(int)); err != nil {
			return nil, err
		}
	}
	if len(fields) == 0 {
		return clause, nil
	}
	if err := s.db.Model(clause).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ClauseService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&model.Clause{}, id).Error
}

func (s *ClauseService) checkContract(contractID int) error {
	ok, err := s.contracts.Exists(contractID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Contract", ID: contractID}
	}
	return nil
}
