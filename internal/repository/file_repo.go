package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tender-service/internal/models"
	"tender-service/internal/tendererrors"
)

// CreateFile inserts the metadata row for an uploaded attachment.
func (s *Store) CreateFile(f *models.File) error {
	if err := s.db.Create(f).Error; err != nil {
		return fmt.Errorf("create file row: %w", err)
	}
	return nil
}

// FileByStoredName looks up one attachment of a tender by its storage name.
func (s *Store) FileByStoredName(tenderID int64, storedName string) (*models.File, error) {
	var f models.File
	err := s.db.Where("tender_id = ? AND stored_name = ?", tenderID, storedName).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get file %q of tender %d: %w", storedName, tenderID, err)
	}
	return &f, nil
}

// DeleteFileRow removes one attachment's metadata. Reports ErrFileNotFound
// when no row matched.
func (s *Store) DeleteFileRow(tenderID int64, storedName string) error {
	res := s.db.Where("tender_id = ? AND stored_name = ?", tenderID, storedName).Delete(&models.File{})
	if res.Error != nil {
		return fmt.Errorf("delete file %q of tender %d: %w", storedName, tenderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return tendererrors.ErrFileNotFound
	}
	return nil
}

// FilesByTender lists all attachment rows of one tender.
func (s *Store) FilesByTender(tenderID int64) ([]models.File, error) {
	var files []models.File
	if err := s.db.Where("tender_id = ?", tenderID).Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list files of tender %d: %w", tenderID, err)
	}
	return files, nil
}

// CreateParticipant inserts a reference company into the directory.
func (s *Store) CreateParticipant(p *models.Participant) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

// Participants lists the whole participant-company directory.
func (s *Store) Participants() ([]models.Participant, error) {
	var list []models.Participant
	if err := s.db.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return list, nil
}

// ParticipantByID returns one reference company.
func (s *Store) ParticipantByID(id int64) (*models.Participant, error) {
	var p models.Participant
	err := s.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrInvalidArgument
	}
	if err != nil {
		return nil, fmt.Errorf("get participant %d: %w", id, err)
	}
	return &p, nil
}
