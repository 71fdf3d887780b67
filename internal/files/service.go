// Package files holds attachment business logic. Every non-admin operation
// requires the caller to own the tender; admin variants only require the
// tender to exist. The metadata row and the blob are two stores: on delete
// the row always goes first, so a crash can leave an orphan blob but never
// a reference to a missing blob.
package files

import (
	"errors"
	"fmt"
	"io"

	"tender-service/internal/models"
	"tender-service/internal/repository"
	"tender-service/internal/storage"
	"tender-service/internal/tendererrors"
	"tender-service/utils"
)

// Service implements the attachment operations.
type Service struct {
	store *repository.Store
	blobs storage.Blobs
}

// NewService wires the file service.
func NewService(store *repository.Store, blobs storage.Blobs) *Service {
	return &Service{store: store, blobs: blobs}
}

// Save attaches an uploaded file to a tender the caller owns.
func (s *Service) Save(caller *models.User, tenderID int64, fileName string, src io.Reader) (*models.File, error) {
	if err := s.requireOwned(caller, tenderID); err != nil {
		return nil, err
	}
	return s.save(tenderID, fileName, src)
}

// SaveByAdmin attaches a file to any existing tender.
func (s *Service) SaveByAdmin(tenderID int64, fileName string, src io.Reader) (*models.File, error) {
	if err := s.requireExists(tenderID); err != nil {
		return nil, err
	}
	return s.save(tenderID, fileName, src)
}

func (s *Service) save(tenderID int64, fileName string, src io.Reader) (*models.File, error) {
	storedName, path, size, err := s.blobs.Save(tenderID, fileName, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tendererrors.ErrStorage, err)
	}

	file := &models.File{
		TenderID:   tenderID,
		FileName:   fileName,
		StoredName: storedName,
		Path:       path,
		Size:       size,
	}
	if err := s.store.CreateFile(file); err != nil {
		// The blob has no row pointing at it; remove it again.
		if derr := s.blobs.Delete(tenderID, storedName); derr != nil {
			utils.Error("orphaned blob after failed metadata insert", map[string]any{
				"tender_id":   tenderID,
				"stored_name": storedName,
				"error":       derr.Error(),
			})
		}
		return nil, err
	}
	return file, nil
}

// Load opens an attachment of a tender the caller owns.
func (s *Service) Load(caller *models.User, tenderID int64, storedName string) (*models.File, io.ReadCloser, error) {
	if err := s.requireOwned(caller, tenderID); err != nil {
		return nil, nil, err
	}
	return s.load(tenderID, storedName)
}

// LoadByAdmin opens an attachment of any existing tender.
func (s *Service) LoadByAdmin(tenderID int64, storedName string) (*models.File, io.ReadCloser, error) {
	if err := s.requireExists(tenderID); err != nil {
		return nil, nil, err
	}
	return s.load(tenderID, storedName)
}

func (s *Service) load(tenderID int64, storedName string) (*models.File, io.ReadCloser, error) {
	file, err := s.store.FileByStoredName(tenderID, storedName)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Open(tenderID, storedName)
	if errors.Is(err, storage.ErrBlobNotFound) {
		// Row without blob is the mismatch the delete ordering is meant to
		// prevent; surface it loudly.
		utils.Error("file metadata without blob", map[string]any{
			"tender_id":   tenderID,
			"stored_name": storedName,
		})
		return nil, nil, fmt.Errorf("%w: blob missing for %q", tendererrors.ErrFileNotFound, storedName)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", tendererrors.ErrStorage, err)
	}
	return file, rc, nil
}

// Delete removes an attachment of a tender the caller owns.
func (s *Service) Delete(caller *models.User, tenderID int64, storedName string) error {
	if err := s.requireOwned(caller, tenderID); err != nil {
		return err
	}
	return s.delete(tenderID, storedName)
}

// DeleteByAdmin removes an attachment of any existing tender.
func (s *Service) DeleteByAdmin(tenderID int64, storedName string) error {
	if err := s.requireExists(tenderID); err != nil {
		return err
	}
	return s.delete(tenderID, storedName)
}

func (s *Service) delete(tenderID int64, storedName string) error {
	if err := s.store.DeleteFileRow(tenderID, storedName); err != nil {
		return err
	}

	err := s.blobs.Delete(tenderID, storedName)
	if errors.Is(err, storage.ErrBlobNotFound) {
		utils.Warn("blob already gone on file delete", map[string]any{
			"tender_id":   tenderID,
			"stored_name": storedName,
		})
		return nil
	}
	if err != nil {
		utils.Error("orphaned blob after file delete", map[string]any{
			"tender_id":   tenderID,
			"stored_name": storedName,
			"error":       err.Error(),
		})
		return fmt.Errorf("%w: %v", tendererrors.ErrStorage, err)
	}
	return nil
}

func (s *Service) requireOwned(caller *models.User, tenderID int64) error {
	owned, err := s.store.TenderExistsOwned(tenderID, caller.ID)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: tender %d", tendererrors.ErrAccessDenied, tenderID)
	}
	return nil
}

func (s *Service) requireExists(tenderID int64) error {
	exists, err := s.store.TenderExists(tenderID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: tender %d", tendererrors.ErrTenderNotFound, tenderID)
	}
	return nil
}
