package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tender-service/internal/models"
	"tender-service/internal/query"
	"tender-service/internal/tendererrors"
)

// tenderPreloads loads the owned collections and the user/participant slots.
func tenderPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items").
		Preload("ItemsAndParticipants").
		Preload("Files").
		Preload("Supplier").
		Preload("Tenderer").
		Preload("Participant")
}

// TenderByID returns one tender with its children and slots loaded.
func (s *Store) TenderByID(id int64) (*models.Tender, error) {
	var t models.Tender
	err := tenderPreloads(s.db).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrTenderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tender %d: %w", id, err)
	}
	return &t, nil
}

// TenderForUserInAnyRole returns the tender only when the user occupies the
// owner, supplier or tenderer slot on it.
func (s *Store) TenderForUserInAnyRole(id, userID int64) (*models.Tender, error) {
	var t models.Tender
	err := tenderPreloads(s.db).
		Where("id = ? AND (user_id = ? OR supplier_id = ? OR tenderer_id = ?)", id, userID, userID, userID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrAccessDenied
	}
	if err != nil {
		return nil, fmt.Errorf("get tender %d for user %d: %w", id, userID, err)
	}
	return &t, nil
}

// TenderOwned returns the tender only when the user is its owner.
func (s *Store) TenderOwned(id, userID int64) (*models.Tender, error) {
	var t models.Tender
	err := tenderPreloads(s.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrAccessDenied
	}
	if err != nil {
		return nil, fmt.Errorf("get owned tender %d: %w", id, err)
	}
	return &t, nil
}

// TenderExists reports whether a tender row with this id is persisted.
func (s *Store) TenderExists(id int64) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Tender{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check tender %d: %w", id, err)
	}
	return count > 0, nil
}

// TenderExistsOwned reports whether the user owns a tender with this id.
func (s *Store) TenderExistsOwned(id, userID int64) (bool, error) {
	var count int64
	err := s.db.Model(&models.Tender{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check owned tender %d: %w", id, err)
	}
	return count > 0, nil
}

// ListTenders runs a filtered, paginated, sorted listing. The sort name
// resolves through the field registry, never raw.
func (s *Store) ListTenders(filter query.Filter, page, size int, sortBy, direction string) ([]models.Tender, error) {
	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}

	var tenders []models.Tender
	db := filter.Apply(tenderPreloads(s.db).Preload("User").Model(&models.Tender{}))
	err := db.
		Order(query.TenderFields.SortColumn(sortBy) + " " + dir).
		Offset(page * size).
		Limit(size).
		Find(&tenders).Error
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}
	return tenders, nil
}

// AllTenders returns every persisted tender with the participant slot
// loaded; the nightly sweep needs the participant name for the deal guard.
func (s *Store) AllTenders() ([]models.Tender, error) {
	var tenders []models.Tender
	if err := s.db.Preload("Participant").Find(&tenders).Error; err != nil {
		return nil, fmt.Errorf("load all tenders: %w", err)
	}
	return tenders, nil
}

// CreateTender inserts a freshly ingested tender with its items.
func (s *Store) CreateTender(t *models.Tender) error {
	if err := s.db.Create(t).Error; err != nil {
		return fmt.Errorf("create tender %d: %w", t.ID, err)
	}
	return nil
}

// SaveTender persists field changes on an existing tender. Associations are
// deliberately not written here; collection replacement has its own path.
func (s *Store) SaveTender(t *models.Tender) error {
	if err := s.db.Omit("Items", "ItemsAndParticipants", "Files", "User", "Supplier", "Tenderer", "Participant").Save(t).Error; err != nil {
		return fmt.Errorf("save tender %d: %w", t.ID, err)
	}
	return nil
}

// ReplaceItemsAndParticipants swaps the whole progress collection of a
// tender: delete all rows, insert the incoming ones re-parented to the
// tender. Call inside a Transaction together with the enclosing save.
func (s *Store) ReplaceItemsAndParticipants(tenderID int64, rows []models.ItemsAndParticipants) error {
	if err := s.db.Where("tender_id = ?", tenderID).Delete(&models.ItemsAndParticipants{}).Error; err != nil {
		return fmt.Errorf("clear items and participants for tender %d: %w", tenderID, err)
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].TenderID = tenderID
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert items and participants for tender %d: %w", tenderID, err)
	}
	return nil
}

// DeleteTender removes the tender and the rows it exclusively owns. Blob
// removal is the caller's follow-up step, after the rows are gone.
func (s *Store) DeleteTender(id int64) error {
	return s.Transaction(func(tx *Store) error {
		for _, child := range []any{&models.Item{}, &models.ItemsAndParticipants{}, &models.File{}} {
			if err := tx.db.Where("tender_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("delete children of tender %d: %w", id, err)
			}
		}
		if err := tx.db.Delete(&models.Tender{}, id).Error; err != nil {
			return fmt.Errorf("delete tender %d: %w", id, err)
		}
		return nil
	})
}

// DistinctUnits lists every unit value in use across tenders.
func (s *Store) DistinctUnits() ([]string, error) {
	var units []string
	err := s.db.Model(&models.Tender{}).
		Distinct().
		Where("unit IS NOT NULL").
		Order("unit").
		Pluck("unit", &units).Error
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}
