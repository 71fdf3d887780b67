// Package tenders holds the tender business logic: access-scoped CRUD,
// first-access ingestion from the portal and the nightly reconciliation
// sweep.
package tenders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tender-service/internal/merge"
	"tender-service/internal/models"
	"tender-service/internal/portal"
	"tender-service/internal/query"
	"tender-service/internal/repository"
	"tender-service/internal/storage"
	"tender-service/internal/tendererrors"
	"tender-service/utils"
)

// Service implements the tender operations.
type Service struct {
	store  *repository.Store
	portal portal.Client
	blobs  storage.Blobs
	pause  time.Duration
}

// NewService wires the tender service with its collaborators. pause is the
// throttle applied after each reconciliation write.
func NewService(store *repository.Store, portalClient portal.Client, blobs storage.Blobs, pause time.Duration) *Service {
	return &Service{store: store, portal: portalClient, blobs: blobs, pause: pause}
}

// GetByID returns a tender visible to the caller. An unknown id triggers a
// portal fetch and registers the tender to the caller, which needs the USER
// role; admins see every persisted tender without a slot check.
func (s *Service) GetByID(ctx context.Context, caller *models.User, id int64) (*models.Tender, error) {
	exists, err := s.store.TenderExists(id)
	if err != nil {
		return nil, err
	}

	if exists {
		if caller.Roles.Has(models.RoleAdmin) {
			return s.store.TenderByID(id)
		}
		return s.store.TenderForUserInAnyRole(id, caller.ID)
	}

	if !caller.Roles.Has(models.RoleUser) {
		return nil, tendererrors.ErrTenderNotFound
	}

	parsed, err := s.fetchFromPortal(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.ingest(caller.ID, id, parsed)
}

// ListForCaller lists tenders where the caller occupies the slot named by
// role, with the remaining request parameters applied as dynamic filters.
// The parameter that named the role-bound id is dropped first so the slot
// is never filtered twice.
func (s *Service) ListForCaller(caller *models.User, role string, page, size int, sortBy, direction string, params map[string]string) ([]models.Tender, error) {
	var slot query.Condition

	switch models.Role(role) {
	case models.RoleUser:
		slot = query.Condition{Expr: "user_id = ?", Args: []any{caller.ID}}
		delete(params, "userId")
	case models.RoleSupplier:
		slot = query.Condition{Expr: "supplier_id = ?", Args: []any{caller.ID}}
		delete(params, "supplierId")
	case models.RoleTenderer:
		slot = query.Condition{Expr: "tenderer_id = ?", Args: []any{caller.ID}}
		delete(params, "tendererId")
	default:
		return nil, fmt.Errorf("%w: unknown role %q", tendererrors.ErrInvalidArgument, role)
	}

	filter := append(query.Filter{slot}, query.Build(query.TenderFields, params)...)
	return s.store.ListTenders(filter, page, size, sortBy, direction)
}

// ListAll is the admin listing over every tender, filtered and paginated,
// with the owning user loaded alongside each record.
func (s *Service) ListAll(page, size int, sortBy, direction string, params map[string]string) ([]models.Tender, error) {
	filter := query.Build(query.TenderFields, params)
	return s.store.ListTenders(filter, page, size, sortBy, direction)
}

// UpdateForCaller applies a sparse patch to a tender the caller holds a
// slot on (admins skip the slot check). A non-nil itemsAndParticipants
// collection replaces the stored one wholesale before the field merge.
func (s *Service) UpdateForCaller(caller *models.User, patch *models.Tender) (*models.Tender, error) {
	var result *models.Tender

	err := s.store.Transaction(func(tx *repository.Store) error {
		var target *models.Tender
		var err error
		if caller.Roles.Has(models.RoleAdmin) {
			target, err = tx.TenderByID(patch.ID)
		} else {
			target, err = tx.TenderForUserInAnyRole(patch.ID, caller.ID)
		}
		if err != nil {
			return err
		}

		if err := applyPatch(tx, target, patch); err != nil {
			return err
		}
		result = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateByAdmin patches any tender and may assign the user/supplier/
// tenderer/participant slots by id. Slot users must carry the matching
// role tag. Incoming file metadata is ignored on this path.
func (s *Service) UpdateByAdmin(patch *models.Tender, userID, supplierID, tendererID, participantID *int64) (*models.Tender, error) {
	var result *models.Tender

	err := s.store.Transaction(func(tx *repository.Store) error {
		target, err := tx.TenderByID(patch.ID)
		if err != nil {
			return err
		}

		patch.Files = nil

		if tendererID != nil {
			user, err := tx.UserByID(*tendererID)
			if err != nil {
				return err
			}
			if !user.Roles.Has(models.RoleTenderer) {
				return fmt.Errorf("%w: user %d is not a tenderer", tendererrors.ErrInvalidArgument, user.ID)
			}
			target.TendererID = &user.ID
		}

		if supplierID != nil {
			user, err := tx.UserByID(*supplierID)
			if err != nil {
				return err
			}
			if !user.Roles.Has(models.RoleSupplier) {
				return fmt.Errorf("%w: user %d is not a supplier", tendererrors.ErrInvalidArgument, user.ID)
			}
			target.SupplierID = &user.ID
		}

		if userID != nil {
			user, err := tx.UserByID(*userID)
			if err != nil {
				return err
			}
			target.UserID = &user.ID
		}

		if participantID != nil {
			p, err := tx.ParticipantByID(*participantID)
			if err != nil {
				return err
			}
			target.ParticipantID = &p.ID
		}

		if err := applyPatch(tx, target, patch); err != nil {
			return err
		}
		result = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyPatch runs the collection replacement, the nil-skipping field merge
// and the save, inside the caller's transaction.
func applyPatch(tx *repository.Store, target, patch *models.Tender) error {
	if patch.ItemsAndParticipants != nil {
		rows := patch.ItemsAndParticipants
		if err := tx.ReplaceItemsAndParticipants(target.ID, rows); err != nil {
			return err
		}
		target.ItemsAndParticipants = rows
		patch.ItemsAndParticipants = nil
	}

	merge.ApplyTenderPatch(target, patch)
	return tx.SaveTender(target)
}

// Delete removes a tender with everything it owns. Owners may delete their
// own tenders, admins any. Metadata rows go first; blob removal failures
// leave orphan blobs behind, which are logged and swept separately, never
// dangling rows.
func (s *Service) Delete(caller *models.User, id int64) error {
	var err error
	if caller.Roles.Has(models.RoleAdmin) {
		_, err = s.store.TenderByID(id)
	} else {
		_, err = s.store.TenderOwned(id, caller.ID)
	}
	if err != nil {
		return err
	}

	if err := s.store.DeleteTender(id); err != nil {
		return err
	}

	if err := s.blobs.DeleteAll(id); err != nil {
		utils.Error("orphaned blobs after tender delete", map[string]any{
			"tender_id": id,
			"error":     err.Error(),
		})
	}
	return nil
}

// AddForUserByAdmin fetches a tender from the portal and registers it to
// the given user. Conflict when the tender id is already persisted.
func (s *Service) AddForUserByAdmin(ctx context.Context, userID, tenderID int64) (*models.Tender, error) {
	owner, err := s.store.UserByID(userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.TenderExists(tenderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: tender %d", tendererrors.ErrConflict, tenderID)
	}

	parsed, err := s.fetchFromPortal(ctx, tenderID)
	if err != nil {
		return nil, err
	}

	return s.ingest(owner.ID, tenderID, parsed)
}

// Units lists the distinct unit values across all tenders.
func (s *Service) Units() ([]string, error) {
	return s.store.DistinctUnits()
}

// Participants lists the participant-company directory.
func (s *Service) Participants() ([]models.Participant, error) {
	return s.store.Participants()
}

// fetchFromPortal maps portal errors onto the service taxonomy.
func (s *Service) fetchFromPortal(ctx context.Context, tenderID int64) (*portal.ParsedTender, error) {
	parsed, err := s.portal.FetchTender(ctx, tenderID)
	if errors.Is(err, portal.ErrTenderNotFound) {
		return nil, fmt.Errorf("%w: portal has no tender %d", tendererrors.ErrTenderNotFound, tenderID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tendererrors.ErrUpstream, err)
	}
	return parsed, nil
}

// ingest builds and persists a fresh tender from a portal document. The
// existence check runs again inside the transaction so a concurrent ingest
// of the same id cannot slip in between check and insert.
func (s *Service) ingest(ownerID, tenderID int64, parsed *portal.ParsedTender) (*models.Tender, error) {
	tender := buildTender(ownerID, tenderID, parsed)

	err := s.store.Transaction(func(tx *repository.Store) error {
		exists, err := tx.TenderExists(tenderID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: tender %d", tendererrors.ErrConflict, tenderID)
		}
		return tx.CreateTender(tender)
	})
	if err != nil {
		return nil, err
	}
	return tender, nil
}
