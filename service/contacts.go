package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// ContactService is the repository for legal contacts.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// ContactFilter narrows List results. Specialty matches a case-insensitive
// substring. Nil fields are ignored.
type ContactFilter struct {
	Role      *model.ContactRole
	Specialty *string
}

// List returns contacts ordered by name ascending.
func (s *ContactService) List(f ContactFilter) ([]model.LegalContact, error) {
	q := s.db.Model(&model.LegalContact{})
	if f.Role != nil {
		q = q.Where("role = ?", *f.Role)
	}
	if f.Specialty != nil {
		q = q.Where("LOWER(specialty) LIKE ?", "%"+strings.ToLower(*f.Specialty)+"%")
	}

	contacts := []model.LegalContact{}
	if err := q.Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *ContactService) Get(id int) (*model.LegalContact, error) {
	var contact model.LegalContact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Legal contact", ID: id}
		}
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) Create(contact *model.LegalContact) error {
	return s.db.Create(contact).Error
}

func (s *ContactService) Update(id int, fields map[string]any) (*model.LegalContact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return contact, nil
	}
	if err := s.db.Model(contact).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ContactService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&model.LegalContact{}, id).Error
}
