package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
)

// NoteService is the repository for legal notes. reference_id is stored as
// given and never checked against the referenced table.
type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

// NoteFilter narrows List results. Author matches a case-insensitive
// substring. Nil fields are ignored.
type NoteFilter struct {
	ReferenceType *model.ReferenceType
	ReferenceID   *int
	Author        *string
}

// List returns notes newest first.
func (s *NoteService) List(f NoteFilter) ([]model.LegalNote, error) {
	q := s.db.Model(&model.LegalNote{})
	if f.ReferenceType != nil {
		q = q.Where("reference_type = ?", *f.ReferenceType)
	}
	if f.ReferenceID != nil {
		q = q.Where("reference_id = ?", *f.ReferenceID)
	}
	if f.Author != nil {
		q = q.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(*f.Author)+"%")
	}

	notes := []model.LegalNote{}
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) Get(id int) (*model.LegalNote, error) {
	var note model.LegalNote
	if err := s.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Legal note", ID: id}
		}
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) Create(note *model.LegalNote) error {
	return s.db.Create(note).Error
}

func (s *NoteService) Update(id int, fields map[string]any) (*model.LegalNote, error) {
	note, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return note, nil
	}
	if err := s.db.Model(note).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *NoteService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&model.LegalNote{}, id).Error
}
