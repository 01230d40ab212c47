package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// ComplianceService is the repository for compliance items.
type ComplianceService struct {
	db *gorm.DB
}

func NewComplianceService(db *gorm.DB) *ComplianceService {
	return &ComplianceService{db: db}
}

// ComplianceFilter narrows List results. Nil fields are ignored.
type ComplianceFilter struct {
	Status    *model.ComplianceStatus
	DueWithin *int // due_date within [today, today+N]
	Category  *model.ComplianceCategory
}

// List returns compliance items ordered by due date ascending, items with
// no due date last.
func (s *ComplianceService) List(f ComplianceFilter) ([]model.ComplianceItem, error) {
	q := s.db.Model(&model.ComplianceItem{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.DueWithin != nil {
		today := model.Today()
		deadline := today.AddDays(*f.DueWithin)
		q = q.Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", today, deadline)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}

	items := []model.ComplianceItem{}
	if err := q.Order("due_date IS NULL, due_date ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ComplianceService) Get(id int) (*model.ComplianceItem, error) {
	var item model.ComplianceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Compliance item", ID: id}
		}
		return nil, err
	}
	return &item, nil
}

func (s *ComplianceService) Create(item *model.ComplianceItem) error {
	return s.db.Create(item).Error
}

func (s *ComplianceService) Update(id int, fields map[string]any) (*model.ComplianceItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return item, nil
	}
	if err := s.db.Model(item).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ComplianceService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&model.ComplianceItem{}, id).Error
}
